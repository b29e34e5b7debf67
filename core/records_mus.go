package core

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-maintained MUS serializers for the domain types stored in the
// catalog backend. Field order is part of the wire format; append-only.

// IDMUS serializes ID values.
var IDMUS = idMUS{}

// DishRecordMUS serializes DishRecord values.
var DishRecordMUS = dishRecordMUS{}

var (
	_ mus.Serializer[ID]         = IDMUS
	_ mus.Serializer[DishRecord] = DishRecordMUS
)

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(v ID) int {
	return varint.Uint64.Size(uint64(v))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type dishRecordMUS struct{}

func (s dishRecordMUS) Marshal(v DishRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += varint.PositiveInt.Marshal(v.Ordinal, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += raw.Float64.Marshal(v.Price, bs[n:])
	n += ord.String.Marshal(v.Restaurant, bs[n:])
	n += ord.String.Marshal(v.Cuisine, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	n += ord.String.Marshal(v.Address, bs[n:])
	n += ord.String.Marshal(v.PriceRange, bs[n:])
	n += marshalVector(v.Vector, bs[n:])
	return n
}

func (s dishRecordMUS) Unmarshal(bs []byte) (v DishRecord, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Ordinal, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Price, n1, err = raw.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Restaurant, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Cuisine, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Address, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PriceRange, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = unmarshalVector(bs[n:])
	n += n1
	return
}

func (s dishRecordMUS) Size(v DishRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += varint.PositiveInt.Size(v.Ordinal)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Description)
	size += raw.Float64.Size(v.Price)
	size += ord.String.Size(v.Restaurant)
	size += ord.String.Size(v.Cuisine)
	size += ord.String.Size(v.Category)
	size += ord.String.Size(v.Address)
	size += ord.String.Size(v.PriceRange)
	size += sizeVector(v.Vector)
	return size
}

func (s dishRecordMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

func marshalVector(v []float32, bs []byte) (n int) {
	n = varint.PositiveInt.Marshal(len(v), bs)
	for _, val := range v {
		n += raw.Float32.Marshal(val, bs[n:])
	}
	return n
}

func unmarshalVector(bs []byte) (v []float32, n int, err error) {
	length, n, err := varint.PositiveInt.Unmarshal(bs)
	if err != nil || length == 0 {
		return nil, n, err
	}
	var n1 int
	v = make([]float32, length)
	for i := 0; i < length; i++ {
		v[i], n1, err = raw.Float32.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
	}
	return v, n, nil
}

func sizeVector(v []float32) (size int) {
	size = varint.PositiveInt.Size(len(v))
	for _, val := range v {
		size += raw.Float32.Size(val)
	}
	return size
}
