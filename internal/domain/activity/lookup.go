package activity

import "context"

// CustomerInfo is the customer display data a normalized record carries
type CustomerInfo struct {
	ID        int64
	Name      string
	OwnerName string
}

// StatusInfo is the status display data a normalized record carries
type StatusInfo struct {
	ID      int64
	Process string
	Status  string
	Color   int
}

// TypeInfo is the activity type display data a normalized record carries
type TypeInfo struct {
	ID       int64
	TypeName string
	Color    int
}

// CustomerLookup resolves customer display data in batches. Missing ids
// are simply absent from the returned map, never an error.
type CustomerLookup interface {
	FindInfoByIDs(ctx context.Context, ids []int64) (map[int64]CustomerInfo, error)
}

// StatusLookup resolves status display data in batches
type StatusLookup interface {
	FindInfoByIDs(ctx context.Context, ids []int64) (map[int64]StatusInfo, error)
}

// TypeLookup resolves activity type display data by name in batches
type TypeLookup interface {
	FindInfoByTypeNames(ctx context.Context, typeNames []string) (map[string]TypeInfo, error)
}
