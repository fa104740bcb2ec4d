/*
Copyright © 2013 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package dataflow

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Codec serializes the interface{} messages Cell.Update/Message produce
// so they can cross a process boundary, the same way the partition
// package's RPC exchanger has to flatten Coord into a gob-safe wire type
// at its own boundary.
type Codec interface {
	Encode(msg interface{}) ([]byte, error)
	Decode(data []byte, out interface{}) error
}

// GobCodec is the default Codec, built on encoding/gob the same way
// net/rpc's default codec is.
type GobCodec struct{}

// Encode implements Codec.
func (GobCodec) Encode(msg interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(msg); err != nil {
		return nil, fmt.Errorf("encoding dataflow message: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode implements Codec.
func (GobCodec) Decode(data []byte, out interface{}) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(out); err != nil {
		return fmt.Errorf("decoding dataflow message: %w", err)
	}
	return nil
}
