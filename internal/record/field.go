package record

// Field identifies one slot of a Record. The numeric value is the slot
// position in the on-disk block.
type Field int

const (
	FieldID        Field = iota // offset 0
	FieldFirstName              // offset 256
	FieldLastName               // offset 512
	FieldCountry                // offset 768
	FieldState                  // offset 1024
	FieldAddress1               // offset 1280
	FieldAddress2               // offset 1536
	FieldZip                    // offset 1792
	FieldHomePhone              // offset 2048
	FieldWorkPhone              // offset 2304
)

// Fields lists every field in on-disk order.
var Fields = [FieldCount]Field{
	FieldID,
	FieldFirstName,
	FieldLastName,
	FieldCountry,
	FieldState,
	FieldAddress1,
	FieldAddress2,
	FieldZip,
	FieldHomePhone,
	FieldWorkPhone,
}

var fieldNames = [FieldCount]string{
	"id",
	"first_name",
	"last_name",
	"country",
	"state",
	"address_1",
	"address_2",
	"zip",
	"home_phone",
	"work_phone",
}

var fieldLabels = [FieldCount]string{
	"ID",
	"First Name",
	"Last Name",
	"Country",
	"State",
	"Address Line 1",
	"Address Line 2",
	"Zip",
	"Home Phone",
	"Work Phone",
}

// Offset is the byte position of the field's slot inside a record block.
func (f Field) Offset() int {
	return int(f) * FieldSize
}

// Name is the snake_case name used in one-line commands.
func (f Field) Name() string {
	return fieldNames[f]
}

// Label is the human readable name shown by the console.
func (f Field) Label() string {
	return fieldLabels[f]
}

// FieldByName resolves a snake_case field name.
func FieldByName(name string) (Field, bool) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), true
		}
	}
	return 0, false
}

func (r *Record) Get(f Field) string {
	switch f {
	case FieldID:
		return r.ID
	case FieldFirstName:
		return r.FirstName
	case FieldLastName:
		return r.LastName
	case FieldCountry:
		return r.Country
	case FieldState:
		return r.State
	case FieldAddress1:
		return r.Address1
	case FieldAddress2:
		return r.Address2
	case FieldZip:
		return r.Zip
	case FieldHomePhone:
		return r.HomePhone
	case FieldWorkPhone:
		return r.WorkPhone
	}
	return ""
}

func (r *Record) Set(f Field, value string) {
	switch f {
	case FieldID:
		r.ID = value
	case FieldFirstName:
		r.FirstName = value
	case FieldLastName:
		r.LastName = value
	case FieldCountry:
		r.Country = value
	case FieldState:
		r.State = value
	case FieldAddress1:
		r.Address1 = value
	case FieldAddress2:
		r.Address2 = value
	case FieldZip:
		r.Zip = value
	case FieldHomePhone:
		r.HomePhone = value
	case FieldWorkPhone:
		r.WorkPhone = value
	}
}
