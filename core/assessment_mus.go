package core

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for catalog persistence. The wire layout is
// field-by-field in declaration order, with varint numbers and
// length-prefixed strings and slices.

// IDMUS serializes ID values.
var IDMUS = idMUS{}

type idMUS struct{}

var _ mus.Serializer[ID] = idMUS{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

// CategoryMUS serializes Category values as strings.
var CategoryMUS = categoryMUS{}

type categoryMUS struct{}

var _ mus.Serializer[Category] = categoryMUS{}

func (categoryMUS) Marshal(c Category, bs []byte) (n int) {
	return ord.String.Marshal(string(c), bs)
}

func (categoryMUS) Unmarshal(bs []byte) (c Category, n int, err error) {
	s, n, err := ord.String.Unmarshal(bs)
	return Category(s), n, err
}

func (categoryMUS) Size(c Category) (size int) {
	return ord.String.Size(string(c))
}

func (categoryMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var (
	categorySliceMUS = ord.NewSliceSer[Category](CategoryMUS)
	vectorMUS        = ord.NewSliceSer[float32](varint.Float32)
)

// AssessmentMUS serializes Assessment values.
var AssessmentMUS = assessmentMUS{}

type assessmentMUS struct{}

var _ mus.Serializer[Assessment] = assessmentMUS{}

func (assessmentMUS) Marshal(a Assessment, bs []byte) (n int) {
	n = IDMUS.Marshal(a.Id, bs)
	n += ord.String.Marshal(a.URL, bs[n:])
	n += ord.String.Marshal(a.Name, bs[n:])
	n += ord.String.Marshal(a.Description, bs[n:])
	n += varint.Int.Marshal(a.Duration, bs[n:])
	n += ord.Bool.Marshal(a.Adaptive, bs[n:])
	n += ord.Bool.Marshal(a.Remote, bs[n:])
	n += categorySliceMUS.Marshal(a.Categories, bs[n:])
	n += vectorMUS.Marshal(a.Vector, bs[n:])
	return n
}

func (assessmentMUS) Unmarshal(bs []byte) (a Assessment, n int, err error) {
	var n1 int
	a.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	a.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Duration, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Adaptive, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Remote, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Categories, n1, err = categorySliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	a.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (assessmentMUS) Size(a Assessment) (size int) {
	size = IDMUS.Size(a.Id)
	size += ord.String.Size(a.URL)
	size += ord.String.Size(a.Name)
	size += ord.String.Size(a.Description)
	size += varint.Int.Size(a.Duration)
	size += ord.Bool.Size(a.Adaptive)
	size += ord.Bool.Size(a.Remote)
	size += categorySliceMUS.Size(a.Categories)
	size += vectorMUS.Size(a.Vector)
	return size
}

func (assessmentMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	for i := 0; i < 2; i++ {
		n1, err = ord.Bool.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = categorySliceMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = vectorMUS.Skip(bs[n:])
	n += n1
	return
}
