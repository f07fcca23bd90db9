package utils

import (
	"reflect"
	"testing"
)

func TestFlattenTags(t *testing.T) {
	freeform := map[string]string{"b": "2", "a": "1"}
	defined := map[string]map[string]any{
		"ns2": {"k": true},
		"ns1": {"y": "v", "x": 3.5},
	}

	got := FlattenTags(freeform, defined)
	want := []string{"a=1", "b=2", "ns1.x=3.5", "ns1.y=v", "ns2.k=true"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("FlattenTags() = %v, want %v", got, want)
	}
}

func TestFlattenTags_Empty(t *testing.T) {
	if got := FlattenTags(nil, nil); len(got) != 0 {
		t.Errorf("FlattenTags(nil, nil) = %v, want empty", got)
	}
}
