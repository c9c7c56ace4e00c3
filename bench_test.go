package fixedwidth

import (
	"strings"
	"testing"
)

var mixedSchemaLines = []string{
	"Field1=string,f1,0,10",
	"Field2=string,f2,10,10",
	"Field3=int,f3,20,10",
	"Field4=int,f4,30,10",
	"Field5=string,f5,40,10",
	"Field6=int,f6,50,10",
}

const mixedLine = `foo       bar               42        -7bazbazbaz          1`

func BenchmarkDecodeLine_MixedData(b *testing.B) {
	d := NewDecoder(mustLoad(b, mixedSchemaLines...))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.DecodeLine(mixedLine, 1)
	}
}

func BenchmarkDecodeLine_CodePoints_MixedData_Ascii(b *testing.B) {
	d := NewDecoder(mustLoad(b, mixedSchemaLines...))
	d.SetUseCodepointIndices(true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.DecodeLine(mixedLine, 1)
	}
}

func BenchmarkDecodeLine_CodePoints_MixedData_MultiByte(b *testing.B) {
	d := NewDecoder(mustLoad(b, mixedSchemaLines...))
	d.SetUseCodepointIndices(true)
	line := strings.Replace(mixedLine, "foo", "føø", 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.DecodeLine(line, 1)
	}
}

func BenchmarkDecodeAll_MixedData_1000(b *testing.B) {
	d := NewDecoder(mustLoad(b, mixedSchemaLines...))
	data := strings.Repeat(mixedLine+"\n", 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for res := range d.DecodeAll(NewLineReader(strings.NewReader(data)).All()) {
			_ = res
		}
	}
}

func BenchmarkMarshal_MixedData(b *testing.B) {
	s := mustLoad(b, mixedSchemaLines...)
	r, err := NewDecoder(s).DecodeLine(mixedLine, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Marshal(s, r)
	}
}
