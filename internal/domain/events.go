package domain

// Event is an outbound notification from the drag engine to its host.
type Event interface {
	dragEvent()
}

// Moved is advisory: the in-flight item was reordered to a new slot
// during an active drag. Hosts may re-render highlighting off it but must
// not treat it as final.
type Moved struct {
	Item  ItemID
	List  ListID
	Index int
}

func (Moved) dragEvent() {}

// Committed fires exactly once per completed drag, on pointer-up. The
// host applies it to its authoritative storage: splice the item out of
// FromList at FromIndex and into List at Index. A drag with no effective
// move commits with From fields equal to the destination fields.
type Committed struct {
	Item      ItemID
	FromList  ListID
	FromIndex int
	List      ListID
	Index     int
}

func (Committed) dragEvent() {}
