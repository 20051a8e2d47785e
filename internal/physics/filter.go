package physics

// CollisionFilterGroups is the single group a collider or query belongs to.
type CollisionFilterGroups uint32

const (
	DefaultFilter   CollisionFilterGroups = 0x1
	StaticFilter    CollisionFilterGroups = 0x2
	KinematicFilter CollisionFilterGroups = 0x4
	DebrisFilter    CollisionFilterGroups = 0x8
	SensorTrigger   CollisionFilterGroups = 0x10
	CharacterFilter CollisionFilterGroups = 0x20
	CustomFilter1   CollisionFilterGroups = 0x40
	CustomFilter2   CollisionFilterGroups = 0x80
	CustomFilter3   CollisionFilterGroups = 0x100
	CustomFilter4   CollisionFilterGroups = 0x200
	CustomFilter5   CollisionFilterGroups = 0x400
	CustomFilter6   CollisionFilterGroups = 0x800
	CustomFilter7   CollisionFilterGroups = 0x1000
	CustomFilter8   CollisionFilterGroups = 0x2000
	CustomFilter9   CollisionFilterGroups = 0x4000
	CustomFilter10  CollisionFilterGroups = 0x8000
)

// CollisionFilterGroupFlags is the set of groups a collider or query may interact with.
type CollisionFilterGroupFlags uint32

const (
	DefaultFilterFlag   = CollisionFilterGroupFlags(DefaultFilter)
	StaticFilterFlag    = CollisionFilterGroupFlags(StaticFilter)
	KinematicFilterFlag = CollisionFilterGroupFlags(KinematicFilter)
	DebrisFilterFlag    = CollisionFilterGroupFlags(DebrisFilter)
	SensorTriggerFlag   = CollisionFilterGroupFlags(SensorTrigger)
	CharacterFilterFlag = CollisionFilterGroupFlags(CharacterFilter)
	CustomFilter1Flag   = CollisionFilterGroupFlags(CustomFilter1)
	CustomFilter2Flag   = CollisionFilterGroupFlags(CustomFilter2)
	CustomFilter3Flag   = CollisionFilterGroupFlags(CustomFilter3)
	CustomFilter4Flag   = CollisionFilterGroupFlags(CustomFilter4)
	CustomFilter5Flag   = CollisionFilterGroupFlags(CustomFilter5)
	CustomFilter6Flag   = CollisionFilterGroupFlags(CustomFilter6)
	CustomFilter7Flag   = CollisionFilterGroupFlags(CustomFilter7)
	CustomFilter8Flag   = CollisionFilterGroupFlags(CustomFilter8)
	CustomFilter9Flag   = CollisionFilterGroupFlags(CustomFilter9)
	CustomFilter10Flag  = CollisionFilterGroupFlags(CustomFilter10)

	NoneFilter CollisionFilterGroupFlags = 0
	AllFilter  CollisionFilterGroupFlags = 0xFFFF
)

// Has reports whether the flag set includes group.
func (f CollisionFilterGroupFlags) Has(group CollisionFilterGroups) bool {
	return uint32(f)&uint32(group) != 0
}

// canInteract is the two-way filter test: each side must accept the other's group.
func canInteract(groupA CollisionFilterGroups, maskA CollisionFilterGroupFlags, groupB CollisionFilterGroups, maskB CollisionFilterGroupFlags) bool {
	return maskA.Has(groupB) && maskB.Has(groupA)
}
