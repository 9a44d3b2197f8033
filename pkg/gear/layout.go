package gear

import (
	"errors"
	"fmt"

	"github.com/ssargent/gearsave/pkg/cursor"
	"github.com/ssargent/gearsave/pkg/strcodec"
)

const (
	unknownZeroesSize = 16
	locationData1Size = 8
	locationData2Size = 12
)

// layout holds the sizes that differ between record variants.
type layout struct {
	kind          Kind
	unknownBytes1 int
	unknownBytes2 int
	script        bool
	unknownBytes3 int
}

var (
	playerLayout = layout{
		kind:          KindPlayerCharacter,
		unknownBytes1: 5,
		unknownBytes2: 12,
	}
	controllerLayout = layout{
		kind:          KindController,
		unknownBytes1: 1,
		unknownBytes2: 6,
		script:        true,
		unknownBytes3: 4,
	}
)

// fields points at one record's storage. script and unknownBytes3 are nil
// when the layout has no script.
type fields struct {
	unknownZeroes *Raw
	floatOne      *float32
	typ           *string
	locationData1 *Raw
	coordinates   *CoordinateData
	locationData2 *Raw
	mesh          *string
	unknownBytes1 *Raw
	squadName     *uint32
	unknownBytes2 *Raw
	script        *string
	unknownBytes3 *Raw
	weapons       *[]WeaponRecord
	restOfData    *Raw
}

func fieldErr(field string, err error) error {
	if errors.Is(err, cursor.ErrTruncated) {
		return cursor.WithField(field, err)
	}
	return fmt.Errorf("%s: %w", field, err)
}

// decode fills f from r in wire order. On error the caller must discard
// the partially filled record.
func (l layout) decode(r *cursor.Reader, sc strcodec.Codec, f fields) error {
	var err error

	if *f.unknownZeroes, err = readRaw(r, "unknownZeroes", unknownZeroesSize); err != nil {
		return err
	}
	if *f.floatOne, err = r.ReadFloat32(); err != nil {
		return fieldErr("floatOne", err)
	}
	if *f.typ, err = sc.Read(r); err != nil {
		return fieldErr("type", err)
	}
	if *f.locationData1, err = readRaw(r, "locationData1", locationData1Size); err != nil {
		return err
	}
	if *f.coordinates, err = ReadCoordinateData(r); err != nil {
		return fieldErr("coordinates", err)
	}
	if *f.locationData2, err = readRaw(r, "locationData2", locationData2Size); err != nil {
		return err
	}
	if *f.mesh, err = sc.Read(r); err != nil {
		return fieldErr("mesh", err)
	}
	if *f.unknownBytes1, err = readRaw(r, "unknownBytes1", l.unknownBytes1); err != nil {
		return err
	}
	if *f.squadName, err = r.ReadUint32(); err != nil {
		return fieldErr("squadName", err)
	}
	if *f.unknownBytes2, err = readRaw(r, "unknownBytes2", l.unknownBytes2); err != nil {
		return err
	}
	if l.script {
		if *f.script, err = sc.Read(r); err != nil {
			return fieldErr("script", err)
		}
		if *f.unknownBytes3, err = readRaw(r, "unknownBytes3", l.unknownBytes3); err != nil {
			return err
		}
	}
	if *f.weapons, err = cursor.ReadCounted(r, ReadWeaponRecord); err != nil {
		return fieldErr("weapons", err)
	}
	*f.restOfData = r.ReadRest()
	return nil
}

// encode writes f in wire order. The weapon count comes from the current
// slice length and the tail is written as is.
func (l layout) encode(w *cursor.Writer, sc strcodec.Codec, f fields) {
	w.WriteBytes(*f.unknownZeroes)
	w.WriteFloat32(*f.floatOne)
	sc.Write(w, *f.typ)
	w.WriteBytes(*f.locationData1)
	f.coordinates.AppendTo(w)
	w.WriteBytes(*f.locationData2)
	sc.Write(w, *f.mesh)
	w.WriteBytes(*f.unknownBytes1)
	w.WriteUint32(*f.squadName)
	w.WriteBytes(*f.unknownBytes2)
	if l.script {
		sc.Write(w, *f.script)
		w.WriteBytes(*f.unknownBytes3)
	}
	cursor.WriteCounted(w, *f.weapons, writeWeapon)
	w.WriteBytes(*f.restOfData)
}

type blockCheck struct {
	name string
	b    Raw
	n    int
}

// validate checks that every fixed opaque block has its layout size and
// that the tail is present.
func (l layout) validate(f fields) error {
	checks := []blockCheck{
		{"unknownZeroes", *f.unknownZeroes, unknownZeroesSize},
		{"locationData1", *f.locationData1, locationData1Size},
		{"locationData2", *f.locationData2, locationData2Size},
		{"unknownBytes1", *f.unknownBytes1, l.unknownBytes1},
		{"unknownBytes2", *f.unknownBytes2, l.unknownBytes2},
	}
	if l.script {
		checks = append(checks, blockCheck{"unknownBytes3", *f.unknownBytes3, l.unknownBytes3})
	}
	for _, c := range checks {
		if err := checkRaw(c.name, c.b, c.n); err != nil {
			return err
		}
	}
	// the tail may be empty but not absent
	if *f.restOfData == nil {
		return fmt.Errorf("%w: restOfData is missing", ErrInvalidRecord)
	}
	return nil
}

// zero allocates zero-filled fixed blocks for a synthetic record.
func (l layout) zero(f fields) {
	*f.unknownZeroes = make(Raw, unknownZeroesSize)
	*f.locationData1 = make(Raw, locationData1Size)
	*f.locationData2 = make(Raw, locationData2Size)
	*f.unknownBytes1 = make(Raw, l.unknownBytes1)
	*f.unknownBytes2 = make(Raw, l.unknownBytes2)
	if l.script {
		*f.unknownBytes3 = make(Raw, l.unknownBytes3)
	}
	*f.weapons = []WeaponRecord{}
	*f.restOfData = Raw{}
}
