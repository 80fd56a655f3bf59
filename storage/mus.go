// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/rhymer/core"
)

// float32Size is the raw encoding size of one vector component.
const float32Size = 4

var (
	idMUS    = idSer{}
	entryMUS = entrySer{}
)

type idSer struct{}

func (idSer) Marshal(v core.ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idSer) Unmarshal(bs []byte) (v core.ID, n int, err error) {
	u, n, err := varint.Uint64.Unmarshal(bs)
	return core.ID(u), n, err
}

func (idSer) Size(v core.ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// entrySer encodes an Entry as id, ordinal, lemma, template, then the
// vector length followed by raw float32 components.
type entrySer struct{}

func (entrySer) Marshal(v core.Entry, bs []byte) (n int) {
	n = idMUS.Marshal(v.Id, bs)
	n += varint.Uint64.Marshal(v.Ordinal, bs[n:])
	n += ord.String.Marshal(v.Lemma, bs[n:])
	n += ord.String.Marshal(v.Template, bs[n:])
	n += varint.Uint64.Marshal(uint64(len(v.Vector)), bs[n:])
	for _, f := range v.Vector {
		n += raw.Float32.Marshal(f, bs[n:])
	}
	return n
}

func (entrySer) Unmarshal(bs []byte) (v core.Entry, n int, err error) {
	var n1 int
	if v.Id, n1, err = idMUS.Unmarshal(bs); err != nil {
		return
	}
	n += n1
	if v.Ordinal, n1, err = varint.Uint64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Lemma, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Template, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	length, n1, err := varint.Uint64.Unmarshal(bs[n:])
	if err != nil {
		return
	}
	n += n1
	if length > uint64((len(bs)-n)/float32Size) {
		err = fmt.Errorf("%w: vector of %d components in %d bytes", ErrTruncatedData, length, len(bs)-n)
		return
	}
	if length > 0 {
		v.Vector = make([]float32, length)
		for i := range v.Vector {
			if v.Vector[i], n1, err = raw.Float32.Unmarshal(bs[n:]); err != nil {
				return
			}
			n += n1
		}
	}
	return
}

func (entrySer) Size(v core.Entry) (size int) {
	size = idMUS.Size(v.Id)
	size += varint.Uint64.Size(v.Ordinal)
	size += ord.String.Size(v.Lemma)
	size += ord.String.Size(v.Template)
	size += varint.Uint64.Size(uint64(len(v.Vector)))
	for _, f := range v.Vector {
		size += raw.Float32.Size(f)
	}
	return size
}
