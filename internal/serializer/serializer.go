package serializer

import (
	"fmt"
	"io"
	"reflect"
)

var serializers = make(Serializers)

type Serializers map[reflect.Type]Serializer

// Serializer is the interface that wraps the basic serialization methods
type Serializer interface {

	// Decode decodes the input into the output
	Decode(input []byte, output any) error

	// Encode encodes the input into the output
	Encode(input any, output io.Writer) error
}

// Register registers a model and its serializer
func Register(model any, serializer Serializer) {
	serializers[reflect.TypeOf(model)] = serializer
}

func Encode(model any, output io.Writer) error {
	if serializer, ok := serializers[reflect.TypeOf(model)]; ok {
		return serializer.Encode(model, output)
	}

	return fmt.Errorf("no serializer found for model %T", model)
}

func Decode(model any, input []byte) error {
	if serializer, ok := serializers[reflect.TypeOf(model)]; ok {
		return serializer.Decode(input, model)
	}

	return fmt.Errorf("no serializer found for model %T", model)
}
