package opt

// EntryWordSize_ is the unpadded size of a keyed lock entry:
// a 4-byte lock word followed by a 4-byte reference count.
const EntryWordSize_ = 8
