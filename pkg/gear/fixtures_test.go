package gear

import (
	"github.com/ssargent/gearsave/pkg/cursor"
	"github.com/ssargent/gearsave/pkg/strcodec"
)

// fixture describes a hand-built record buffer. offsets maps each wire
// field to the byte where it starts.
type fixture struct {
	data    []byte
	offsets map[string]int
}

type fixtureSpec struct {
	typ     string
	mesh    string
	script  string
	squad   uint32
	coords  CoordinateData
	weapons []WeaponRecord
	tail    []byte
}

func sequence(start byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

var sampleWeapons = []WeaponRecord{
	{ObjectName: 0x1001, Slot: 0, AmmoUsedCount: 3, SpareAmmoCount: 120, ExtraWeapon: -1},
	{ObjectName: 0x1002, Slot: 1, AmmoUsedCount: 0, SpareAmmoCount: 8, ExtraWeapon: 0x2001},
	{ObjectName: 0x1003, Slot: 4, AmmoUsedCount: -7, SpareAmmoCount: 0, ExtraWeapon: 0},
}

func tankSpec() fixtureSpec {
	return fixtureSpec{
		typ:     "Tank",
		mesh:    "SK_Tank",
		squad:   7,
		coords:  CoordinateData{X: 1.5, Y: -2.25, Z: 100},
		weapons: sampleWeapons,
		tail:    []byte("objectives"),
	}
}

func droneSpec() fixtureSpec {
	return fixtureSpec{
		typ:     "Drone",
		mesh:    "SK_Drone",
		script:  "AI_Patrol",
		squad:   3,
		coords:  CoordinateData{X: -10, Y: 0.125, Z: 4},
		weapons: sampleWeapons[:1],
		tail:    []byte{0xCA, 0xFE},
	}
}

// buildFixture writes a record field by field without going through the
// layout code, so decode tests do not depend on encode.
func buildFixture(l layout, sc strcodec.Codec, s fixtureSpec) fixture {
	w := cursor.NewWriter(0)
	off := map[string]int{}
	mark := func(name string) { off[name] = w.Len() }

	mark("unknownZeroes")
	w.WriteBytes(make([]byte, unknownZeroesSize))
	mark("floatOne")
	w.WriteFloat32(1.0)
	mark("type")
	sc.Write(w, s.typ)
	mark("locationData1")
	w.WriteBytes(sequence(0x10, locationData1Size))
	mark("coordinates")
	w.WriteFloat32(s.coords.X)
	w.WriteFloat32(s.coords.Y)
	w.WriteFloat32(s.coords.Z)
	mark("locationData2")
	w.WriteBytes(sequence(0x20, locationData2Size))
	mark("mesh")
	sc.Write(w, s.mesh)
	mark("unknownBytes1")
	w.WriteBytes(sequence(0x30, l.unknownBytes1))
	mark("squadName")
	w.WriteUint32(s.squad)
	mark("unknownBytes2")
	w.WriteBytes(sequence(0x40, l.unknownBytes2))
	if l.script {
		mark("script")
		sc.Write(w, s.script)
		mark("unknownBytes3")
		w.WriteBytes(sequence(0x50, l.unknownBytes3))
	}
	mark("weapons")
	w.WriteUint32(uint32(len(s.weapons)))
	for _, wr := range s.weapons {
		w.WriteUint32(wr.ObjectName)
		_ = w.WriteByte(wr.Slot)
		w.WriteInt32(wr.AmmoUsedCount)
		w.WriteUint32(wr.SpareAmmoCount)
		w.WriteInt32(wr.ExtraWeapon)
	}
	mark("restOfData")
	w.WriteBytes(s.tail)

	return fixture{data: w.Bytes(), offsets: off}
}
