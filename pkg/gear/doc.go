// Package gear decodes and encodes the GearPC and GearController records
// found in game save files.
//
// Both records mix known fields with byte ranges whose meaning is not
// understood. Those ranges are kept as Raw values and written back exactly
// as they were read, so a decode followed by an encode reproduces the input
// byte for byte.
//
// # Record Format
//
// All integers and floats are little-endian. Strings use the
// length-prefixed encoding selected on the Codec (see package strcodec).
//
//	GearPC                          GearController
//	[unknownZeroes(16)]             [unknownZeroes(16)]
//	[floatOne f32]                  [floatOne f32]
//	[type string]                   [type string]
//	[locationData1(8)]              [locationData1(8)]
//	[coordinates 3*f32]             [coordinates 3*f32]
//	[locationData2(12)]             [locationData2(12)]
//	[mesh string]                   [mesh string]
//	[unknownBytes1(5)]              [unknownBytes1(1)]
//	[squadName u32]                 [squadName u32]
//	[unknownBytes2(12)]             [unknownBytes2(6)]
//	                                [script string]
//	                                [unknownBytes3(4)]
//	[weapon count u32][weapon(17)]* [weapon count u32][weapon(17)]*
//	[restOfData ...]                [restOfData ...]
//
// A weapon is [objectName u32][slot u8][ammoUsedCount i32]
// [spareAmmoCount u32][extraWeapon i32]. restOfData is whatever follows
// the weapon list and may be empty.
//
// # Usage
//
//	codec := gear.NewCodec()
//
//	pc, err := codec.DecodePlayerCharacter(data)
//	if err != nil {
//	    return err
//	}
//
//	pc.Weapons = append(pc.Weapons, gear.WeaponRecord{ObjectName: 42})
//	out := codec.EncodePlayerCharacter(pc)
//
// # Error Handling
//
// Decoding fails only when a field runs past the end of the buffer. The
// error is a *cursor.TruncatedInputError naming the field path (for example
// "weapons.ammoUsedCount") and the byte offset of the failing read. With the
// fstring encoding a string can also be rejected as malformed. Encoding
// never fails.
//
// # Thread Safety
//
// Codec values are safe for concurrent use. Records are plain values owned
// by the caller.
package gear
