package gear

import "github.com/ssargent/gearsave/pkg/cursor"

// WeaponRecordSize is the encoded size of one WeaponRecord.
const WeaponRecordSize = 17

// WeaponRecord is one equipped or stored weapon slot.
type WeaponRecord struct {
	ObjectName     uint32 `json:"objectName" yaml:"objectName"`
	Slot           uint8  `json:"slot" yaml:"slot"`
	AmmoUsedCount  int32  `json:"ammoUsedCount" yaml:"ammoUsedCount"`
	SpareAmmoCount uint32 `json:"spareAmmoCount" yaml:"spareAmmoCount"`
	ExtraWeapon    int32  `json:"extraWeapon" yaml:"extraWeapon"` // object id or sentinel
}

// ReadWeaponRecord reads one weapon slot: u32, u8, i32, u32, i32.
func ReadWeaponRecord(r *cursor.Reader) (WeaponRecord, error) {
	var (
		w   WeaponRecord
		err error
	)
	if w.ObjectName, err = r.ReadUint32(); err != nil {
		return WeaponRecord{}, cursor.WithField("objectName", err)
	}
	if w.Slot, err = r.ReadByte(); err != nil {
		return WeaponRecord{}, cursor.WithField("slot", err)
	}
	if w.AmmoUsedCount, err = r.ReadInt32(); err != nil {
		return WeaponRecord{}, cursor.WithField("ammoUsedCount", err)
	}
	if w.SpareAmmoCount, err = r.ReadUint32(); err != nil {
		return WeaponRecord{}, cursor.WithField("spareAmmoCount", err)
	}
	if w.ExtraWeapon, err = r.ReadInt32(); err != nil {
		return WeaponRecord{}, cursor.WithField("extraWeapon", err)
	}
	return w, nil
}

func (wr WeaponRecord) AppendTo(w *cursor.Writer) {
	w.WriteUint32(wr.ObjectName)
	_ = w.WriteByte(wr.Slot)
	w.WriteInt32(wr.AmmoUsedCount)
	w.WriteUint32(wr.SpareAmmoCount)
	w.WriteInt32(wr.ExtraWeapon)
}

func writeWeapon(w *cursor.Writer, wr WeaponRecord) {
	wr.AppendTo(w)
}
