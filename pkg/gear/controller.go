package gear

// ControllerRecord is the GearController record of an AI-driven unit. It
// shares the GearPC layout apart from smaller opaque blocks and an extra
// script reference ahead of the weapon list.
type ControllerRecord struct {
	UnknownZeroes Raw            `json:"unknownZeroes" yaml:"unknownZeroes"`
	FloatOne      float32        `json:"floatOne" yaml:"floatOne"`
	Type          string         `json:"type" yaml:"type"`
	LocationData1 Raw            `json:"locationData1" yaml:"locationData1"`
	Coordinates   CoordinateData `json:"coordinates" yaml:"coordinates"`
	LocationData2 Raw            `json:"locationData2" yaml:"locationData2"`
	Mesh          string         `json:"mesh" yaml:"mesh"`
	UnknownBytes1 Raw            `json:"unknownBytes1" yaml:"unknownBytes1"` // weapon holstered, team index?
	SquadName     uint32         `json:"squadName" yaml:"squadName"`
	UnknownBytes2 Raw            `json:"unknownBytes2" yaml:"unknownBytes2"`
	Script        string         `json:"script" yaml:"script"`
	UnknownBytes3 Raw            `json:"unknownBytes3" yaml:"unknownBytes3"` // weapon slot related
	Weapons       []WeaponRecord `json:"weapons" yaml:"weapons"`
	RestOfData    Raw            `json:"restOfData" yaml:"restOfData"`
}

// NewControllerRecord returns a synthetic record with zero-filled opaque
// blocks of the right sizes.
func NewControllerRecord() *ControllerRecord {
	r := &ControllerRecord{}
	controllerLayout.zero(r.view())
	return r
}

func (r *ControllerRecord) Kind() Kind { return KindController }

func (r *ControllerRecord) Validate() error {
	return controllerLayout.validate(r.view())
}

func (r *ControllerRecord) wire() (layout, fields) {
	return controllerLayout, r.view()
}

func (r *ControllerRecord) view() fields {
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
		script:        &r.Script,
		unknownBytes3: &r.UnknownBytes3,
		weapons:       &r.Weapons,
		restOfData:    &r.RestOfData,
	}
}
