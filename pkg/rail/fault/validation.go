package fault

// FieldErrors carries the ordered detail messages collected for one named
// input field.
type FieldErrors struct {
	Field   string
	Details []string
}

// ValidationFault is a Validation-kind fault holding an ordered mapping
// from field name to detail messages. Merging appends details per field in
// encounter order and never overwrites; field order reflects first
// occurrence across the merge sequence.
type ValidationFault struct {
	base
	fields []FieldErrors
}

var _ Fault = ValidationFault{}

// Validation constructs a field-scoped validation fault. An empty field
// name yields a fault without field entries.
func Validation(detail, field string) ValidationFault {
	vf := ValidationFault{base: base{kind: KindValidation, code: CodeValidation, detail: detail}}
	if field != "" {
		vf.fields = []FieldErrors{{Field: field, Details: []string{detail}}}
	}
	return vf
}

// Fields returns a copy of the ordered field errors.
func (v ValidationFault) Fields() []FieldErrors {
	return cloneFields(v.fields)
}

// WithField returns a copy with the details appended to the named field,
// creating the field at the end of the order if it is new.
func (v ValidationFault) WithField(field string, details ...string) ValidationFault {
	if field == "" || len(details) == 0 {
		return v
	}
	out := ValidationFault{base: v.base}
	out.fields = appendFields(cloneFields(v.fields), []FieldErrors{{Field: field, Details: details}})
	return out
}

// Merge combines two validation faults per the append-only rule. The
// receiver's detail and instance win; the other's detail fills in only when
// the receiver has none.
func (v ValidationFault) Merge(other ValidationFault) ValidationFault {
	out := ValidationFault{base: v.base}
	if out.detail == "" {
		out.detail = other.detail
	}
	if out.instance == "" {
		out.instance = other.instance
	}
	out.fields = appendFields(cloneFields(v.fields), other.fields)
	return out
}

func (v ValidationFault) WithCode(code string) Fault {
	v.base.code = code
	return v
}

func (v ValidationFault) WithInstance(instance string) Fault {
	v.base.instance = instance
	return v
}

func (v ValidationFault) Payload() Payload {
	p := v.base.Payload()
	p.FieldErrors = fieldPayloads(v.fields)
	return p
}

func cloneFields(fields []FieldErrors) []FieldErrors {
	if len(fields) == 0 {
		return nil
	}
	out := make([]FieldErrors, len(fields))
	for i, fe := range fields {
		out[i] = FieldErrors{Field: fe.Field, Details: append([]string(nil), fe.Details...)}
	}
	return out
}

func appendFields(dst, src []FieldErrors) []FieldErrors {
	for _, fe := range src {
		at := -1
		for i := range dst {
			if dst[i].Field == fe.Field {
				at = i
				break
			}
		}
		if at >= 0 {
			dst[at].Details = append(dst[at].Details, fe.Details...)
		} else {
			dst = append(dst, FieldErrors{Field: fe.Field, Details: append([]string(nil), fe.Details...)})
		}
	}
	return dst
}
