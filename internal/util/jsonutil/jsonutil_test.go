package jsonutil

import (
	"testing"

	"tripmate/internal/tester"
)

type payload struct {
	Destination string `json:"destination"`
	People      int    `json:"people"`
}

const bareJSON = `{"destination": "Kyoto", "people": 2}`

func TestUnmarshalUnfenced(t *testing.T) {
	var p payload
	tester.NoErr(t, UnmarshalString(bareJSON, &p))
	tester.Eq(t, p, payload{Destination: "Kyoto", People: 2})
}

func TestUnmarshalJSONFence(t *testing.T) {
	var p payload
	tester.NoErr(t, UnmarshalString("```json\n"+bareJSON+"\n```", &p))
	tester.Eq(t, p, payload{Destination: "Kyoto", People: 2})
}

func TestUnmarshalBareFence(t *testing.T) {
	var p payload
	tester.NoErr(t, UnmarshalString("```\n"+bareJSON+"\n```", &p))
	tester.Eq(t, p, payload{Destination: "Kyoto", People: 2})
}

func TestFencedAndUnfencedParseIdentically(t *testing.T) {
	var a, b, c payload
	tester.NoErr(t, UnmarshalString(bareJSON, &a))
	tester.NoErr(t, UnmarshalString("```json\n"+bareJSON+"\n```", &b))
	tester.NoErr(t, UnmarshalString("```\n"+bareJSON+"\n```", &c))
	tester.Eq(t, b, a)
	tester.Eq(t, c, a)
}

func TestUnmarshalMalformed(t *testing.T) {
	var p payload
	tester.Err(t, UnmarshalString("I would suggest visiting Kyoto!", &p))
	tester.Err(t, UnmarshalString("```json\nnot json\n```", &p))
}

func TestStripFenceSurroundingWhitespace(t *testing.T) {
	got := StripFence([]byte("  ```json\n{\"a\":1}\n```  \n"))
	tester.Eq(t, string(got), `{"a":1}`)
}
