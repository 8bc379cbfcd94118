package frameworks

// CommonFrameworks provides common .NET framework instances.
var CommonFrameworks = struct {
	DotNet *FrameworkTag
	Net    *FrameworkTag
}{
	// DotNet represents the .NETCoreApp framework (.NET 5+).
	DotNet: &FrameworkTag{
		Framework: ".NETCoreApp",
		Version:   FrameworkVersion{Major: 5, Minor: 0},
	},
	// Net represents the legacy .NETFramework 4.5.
	Net: &FrameworkTag{
		Framework: ".NETFramework",
		Version:   FrameworkVersion{Major: 4, Minor: 5},
	},
}

// IsCompatible checks if the package framework is compatible with the target framework.
// This is a convenience function that wraps the FrameworkTag.IsCompatible method.
func IsCompatible(pkg, target *FrameworkTag) bool {
	if pkg == nil || target == nil {
		return false
	}
	return pkg.IsCompatible(target)
}

// FrameworkReducer helps find the nearest compatible framework.
type FrameworkReducer struct{}

// NewFrameworkReducer creates a new framework reducer.
func NewFrameworkReducer() *FrameworkReducer {
	return &FrameworkReducer{}
}

// GetNearest finds the nearest compatible framework from available frameworks.
func (fr *FrameworkReducer) GetNearest(target *FrameworkTag, available []*FrameworkTag) *FrameworkTag {
	return GetNearest(target, available)
}
