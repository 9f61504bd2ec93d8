// FILE: alin/src/internal/core/types.go
package core

import (
	"strconv"
	"strings"
)

// ImageRecord is an image-carrying record. Payload is the base64 text of a
// complete raster container.
type ImageRecord struct {
	Width   int
	Height  int
	Filter  string
	Payload string
}

// String renders the record. The filter field is present only when set.
func (r ImageRecord) String() string {
	var b strings.Builder
	b.Grow(len(r.Payload) + 96)
	b.WriteString(`{"` + FieldType + `":"` + TypeImage + `","` + FieldWidth + `":`)
	b.WriteString(strconv.Itoa(r.Width))
	b.WriteString(`,"` + FieldHeight + `":`)
	b.WriteString(strconv.Itoa(r.Height))
	b.WriteString(`,"` + FieldFormat + `":"` + FormatPPM + `"`)
	if r.Filter != "" {
		b.WriteString(`,"` + FieldFilter + `":"`)
		b.WriteString(r.Filter)
		b.WriteByte('"')
	}
	b.WriteString(`,"` + FieldPPM + `":"`)
	b.WriteString(r.Payload)
	b.WriteString(`"}`)
	return b.String()
}

// ResultRecord reports the outcome of writing a file. Path must already be
// escaped for embedding in a record.
type ResultRecord struct {
	Success bool
	Path    string
}

func (r ResultRecord) String() string {
	return `{"` + FieldType + `":"` + TypeResult + `","success":` + strconv.FormatBool(r.Success) +
		`,"` + FieldPath + `":"` + r.Path + `"}`
}
