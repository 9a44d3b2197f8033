package gear

// PlayerCharacterRecord is the GearPC record of a player-controlled unit.
type PlayerCharacterRecord struct {
	UnknownZeroes Raw            `json:"unknownZeroes" yaml:"unknownZeroes"`
	FloatOne      float32        `json:"floatOne" yaml:"floatOne"`
	Type          string         `json:"type" yaml:"type"`
	LocationData1 Raw            `json:"locationData1" yaml:"locationData1"`
	Coordinates   CoordinateData `json:"coordinates" yaml:"coordinates"`
	LocationData2 Raw            `json:"locationData2" yaml:"locationData2"`
	Mesh          string         `json:"mesh" yaml:"mesh"`
	UnknownBytes1 Raw            `json:"unknownBytes1" yaml:"unknownBytes1"` // weapon holstered, team index?
	SquadName     uint32         `json:"squadName" yaml:"squadName"`
	UnknownBytes2 Raw            `json:"unknownBytes2" yaml:"unknownBytes2"` // weapon slot related
	Weapons       []WeaponRecord `json:"weapons" yaml:"weapons"`
	RestOfData    Raw            `json:"restOfData" yaml:"restOfData"`
}

// NewPlayerCharacterRecord returns a synthetic record with zero-filled
// opaque blocks of the right sizes.
func NewPlayerCharacterRecord() *PlayerCharacterRecord {
	r := &PlayerCharacterRecord{}
	playerLayout.zero(r.view())
	return r
}

func (r *PlayerCharacterRecord) Kind() Kind { return KindPlayerCharacter }

// Validate checks the sizes of the fixed opaque blocks. Decoded records
// always pass; edited or hand-built ones may not.
func (r *PlayerCharacterRecord) Validate() error {
	return playerLayout.validate(r.view())
}

func (r *PlayerCharacterRecord) wire() (layout, fields) {
	return playerLayout, r.view()
}

func (r *PlayerCharacterRecord) view() fields {
	return fields{
		unknownZeroes: &r.UnknownZeroes,
		floatOne:      &r.FloatOne,
		typ:           &r.Type,
		locationData1: &r.LocationData1,
		coordinates:   &r.Coordinates,
		locationData2: &r.LocationData2,
		mesh:          &r.Mesh,
		unknownBytes1: &r.UnknownBytes1,
		squadName:     &r.SquadName,
		unknownBytes2: &r.UnknownBytes2,
		weapons:       &r.Weapons,
		restOfData:    &r.RestOfData,
	}
}
