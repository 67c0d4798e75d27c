package fault

// Payload is the serializer-agnostic shape transport adapters render.
type Payload struct {
	Code        string         `json:"code"`
	Detail      string         `json:"detail"`
	Instance    string         `json:"instance,omitempty"`
	FieldErrors []FieldPayload `json:"fieldErrors,omitempty"`
}

type FieldPayload struct {
	FieldName string   `json:"fieldName"`
	Details   []string `json:"details"`
}

// PayloadOf renders any error, classifying non-faults through From first.
// A nil error yields the zero Payload.
func PayloadOf(err error) Payload {
	f := From(err)
	if f == nil {
		return Payload{}
	}
	return f.Payload()
}

func fieldPayloads(fields []FieldErrors) []FieldPayload {
	if len(fields) == 0 {
		return nil
	}
	out := make([]FieldPayload, len(fields))
	for i, fe := range fields {
		out[i] = FieldPayload{FieldName: fe.Field, Details: append([]string(nil), fe.Details...)}
	}
	return out
}
