package node

//go:generate go tool stringer -type=DispatcherEnum -trimprefix=Dispatcher -output=kind_string.go

type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherPrimitive
	DispatcherStruct
	DispatcherList
	DispatcherMap

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)
