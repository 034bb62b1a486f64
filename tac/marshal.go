package tac

import (
	"encoding/json"
	"fmt"
)

// JSON encoding of the logical IR schema:
//
//	procedure   = { "name": string, "body": [instruction...] }
//	instruction = { "opcode": string, "args": [operand...], "result": string | null }
//	operand     = temporary-or-label name string | integer literal
//
// The body list is never empty; an empty procedure is a single nop.

// MarshalJSON encodes a name operand as a JSON string and a literal
// operand as a JSON number.
func (o Operand) MarshalJSON() ([]byte, error) {
	if o.Kind == LiteralOperand {
		return json.Marshal(o.Value)
	}
	return json.Marshal(o.Name)
}

// UnmarshalJSON decodes either form of operand.
func (o *Operand) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*o = Operand{Kind: NameOperand, Name: name}
		return nil
	}
	var value int64
	if err := json.Unmarshal(data, &value); err == nil {
		*o = Operand{Kind: LiteralOperand, Value: value}
		return nil
	}
	return fmt.Errorf("tac: operand must be a string or an integer: %s", data)
}

type jsonInstruction struct {
	Opcode string    `json:"opcode"`
	Args   []Operand `json:"args"`
	Result *string   `json:"result"`
}

// MarshalJSON encodes the instruction with an explicit null result when
// the instruction produces no value.
func (i Instruction) MarshalJSON() ([]byte, error) {
	out := jsonInstruction{
		Opcode: string(i.Opcode),
		Args:   i.Args,
	}
	if out.Args == nil {
		out.Args = []Operand{}
	}
	if i.Result != "" {
		out.Result = &i.Result
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an instruction from the schema form.
func (i *Instruction) UnmarshalJSON(data []byte) error {
	var in jsonInstruction
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	i.Opcode = Opcode(in.Opcode)
	i.Args = in.Args
	if in.Result != nil {
		i.Result = *in.Result
	} else {
		i.Result = ""
	}
	return nil
}

type jsonProcedure struct {
	Name string        `json:"name"`
	Body []Instruction `json:"body"`
}

// MarshalJSON encodes the procedure record, normalizing an empty body to
// a single nop.
func (p Procedure) MarshalJSON() ([]byte, error) {
	body := p.Body
	if len(body) == 0 {
		body = []Instruction{{Opcode: Nop}}
	}
	return json.Marshal(jsonProcedure{Name: p.Name, Body: body})
}

// UnmarshalJSON decodes a procedure record.
func (p *Procedure) UnmarshalJSON(data []byte) error {
	var in jsonProcedure
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*p = NewProcedure(in.Name, in.Body)
	return nil
}

type jsonProgram struct {
	ID    string      `json:"id"`
	Procs []Procedure `json:"procedures"`
}

// MarshalJSON encodes the whole compilation unit.
func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonProgram{ID: p.ID, Procs: p.Procs})
}

// UnmarshalJSON decodes a compilation unit.
func (p *Program) UnmarshalJSON(data []byte) error {
	var in jsonProgram
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	p.ID = in.ID
	p.Procs = in.Procs
	return nil
}
