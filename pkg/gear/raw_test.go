package gear

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/ssargent/gearsave/pkg/strcodec"
	"gopkg.in/yaml.v3"
)

func TestRaw_Text(t *testing.T) {
	r := Raw{0x00, 0xCA, 0xFE, 0xFF}

	text, err := r.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "00cafeff" {
		t.Errorf("MarshalText: got %q", text)
	}

	var back Raw
	if err := back.UnmarshalText([]byte("00CAFEFF")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !back.Equal(r) {
		t.Errorf("UnmarshalText: got %x", back)
	}

	if err := back.UnmarshalText([]byte("xyz")); err == nil {
		t.Error("Expected error for invalid hex")
	}
}

func TestRecord_TextRoundTrip(t *testing.T) {
	codec := NewCodec()
	fx := buildFixture(controllerLayout, strcodec.Prefixed32{}, droneSpec())

	ctl, err := codec.DecodeController(fx.data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	t.Run("json", func(t *testing.T) {
		js, err := json.Marshal(ctl)
		if err != nil {
			t.Fatalf("json marshal failed: %v", err)
		}
		if !bytes.Contains(js, []byte(`"restOfData":"cafe"`)) {
			t.Errorf("Tail should be hex encoded: %s", js)
		}

		var back ControllerRecord
		if err := json.Unmarshal(js, &back); err != nil {
			t.Fatalf("json unmarshal failed: %v", err)
		}
		if !bytes.Equal(codec.EncodeController(&back), fx.data) {
			t.Error("JSON round trip changed the binary form")
		}
	})

	t.Run("yaml", func(t *testing.T) {
		ym, err := yaml.Marshal(ctl)
		if err != nil {
			t.Fatalf("yaml marshal failed: %v", err)
		}

		var back ControllerRecord
		if err := yaml.Unmarshal(ym, &back); err != nil {
			t.Fatalf("yaml unmarshal failed: %v", err)
		}
		if err := back.Validate(); err != nil {
			t.Fatalf("Record from yaml failed validation: %v", err)
		}
		if !bytes.Equal(codec.EncodeController(&back), fx.data) {
			t.Error("YAML round trip changed the binary form")
		}
	})

	t.Run("edited block size", func(t *testing.T) {
		js, _ := json.Marshal(ctl)
		js = bytes.Replace(js, []byte(`"unknownBytes1":"30"`), []byte(`"unknownBytes1":"3031"`), 1)

		var back ControllerRecord
		if err := json.Unmarshal(js, &back); err != nil {
			t.Fatalf("json unmarshal failed: %v", err)
		}
		if err := back.Validate(); !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("Expected ErrInvalidRecord, got %v", err)
		}
	})
}

func TestRecord_TextFloats(t *testing.T) {
	payloadNaN := math.Float32frombits(0x7FC00123)

	pc := NewPlayerCharacterRecord()
	pc.FloatOne = payloadNaN
	pc.Coordinates = CoordinateData{
		X: float32(math.Inf(1)),
		Y: math.Float32frombits(canonicalNaN),
		Z: float32(math.Inf(-1)),
	}

	lossy := LossyFloats(pc)
	if len(lossy) != 1 || lossy[0] != "floatOne" {
		t.Fatalf("LossyFloats: got %v, want [floatOne]", lossy)
	}

	ym, err := yaml.Marshal(pc)
	if err != nil {
		t.Fatalf("yaml marshal failed: %v", err)
	}
	var back PlayerCharacterRecord
	if err := yaml.Unmarshal(ym, &back); err != nil {
		t.Fatalf("yaml unmarshal failed: %v", err)
	}

	// infinities and the canonical NaN survive
	want := pc.Coordinates
	if !back.Coordinates.Equal(want) {
		t.Errorf("Coordinates changed: got %v, want %v", back.Coordinates, want)
	}
	// a NaN payload does not
	if !math.IsNaN(float64(back.FloatOne)) {
		t.Fatalf("FloatOne should still be NaN, got %v", back.FloatOne)
	}
	if math.Float32bits(back.FloatOne) == 0x7FC00123 {
		t.Error("Expected the NaN payload to be lost in YAML")
	}
	if len(LossyFloats(&back)) != 0 {
		t.Errorf("Re-read record should have no lossy floats, got %v", LossyFloats(&back))
	}

	if _, err := json.Marshal(pc); err == nil {
		t.Error("Expected JSON to reject non-finite floats")
	}
}

func TestLossyFloats_Controller(t *testing.T) {
	ctl := NewControllerRecord()
	if got := LossyFloats(ctl); len(got) != 0 {
		t.Errorf("Zero record: got %v", got)
	}

	ctl.Coordinates.Z = math.Float32frombits(0xFFC00001)
	if got := LossyFloats(ctl); len(got) != 1 || got[0] != "coordinates.z" {
		t.Errorf("got %v, want [coordinates.z]", got)
	}
}

func TestNewEmptyRecord_MissingBlocksFailValidation(t *testing.T) {
	pc := NewPlayerCharacterRecord()
	pc.UnknownBytes2 = bytes.Repeat([]byte{0xAA}, 12)
	pc.RestOfData = Raw{0x01}
	full, err := json.Marshal(pc)
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}

	tests := []struct {
		name  string
		input []byte
		field string
	}{
		{"missing block", bytes.Replace(full, []byte(`"unknownBytes2":"aaaaaaaaaaaaaaaaaaaaaaaa",`), nil, 1), "unknownBytes2"},
		{"null block", bytes.Replace(full, []byte(`"unknownBytes1":"0000000000"`), []byte(`"unknownBytes1":null`), 1), "unknownBytes1"},
		{"missing tail", bytes.Replace(full, []byte(`,"restOfData":"01"`), nil, 1), "restOfData"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if bytes.Equal(tt.input, full) {
				t.Fatal("test input was not edited")
			}

			rec, err := NewEmptyRecord(KindPlayerCharacter)
			if err != nil {
				t.Fatalf("NewEmptyRecord failed: %v", err)
			}
			if err := json.Unmarshal(tt.input, rec); err != nil {
				t.Fatalf("json unmarshal failed: %v", err)
			}
			err = rec.Validate()
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("Expected ErrInvalidRecord, got %v", err)
			}
			if !bytes.Contains([]byte(err.Error()), []byte(tt.field)) {
				t.Errorf("Error should name %s: %v", tt.field, err)
			}
		})
	}

	t.Run("complete input", func(t *testing.T) {
		rec, _ := NewEmptyRecord(KindPlayerCharacter)
		if err := json.Unmarshal(full, rec); err != nil {
			t.Fatalf("json unmarshal failed: %v", err)
		}
		if err := rec.Validate(); err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if !bytes.Equal(NewCodec().Encode(rec), NewCodec().Encode(pc)) {
			t.Error("Re-encoded bytes differ from the original")
		}
	})

	if _, err := NewEmptyRecord("vehicle"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}
