package event

// Augmentations is a side channel of annotations attached to an
// event. A nil Augmentations is valid and empty.
type Augmentations map[string]any

func (a Augmentations) Get(key string) any {
	if a == nil {
		return nil
	}
	return a[key]
}

// Put stores an item. It panics on a nil Augmentations, like
// assignment to a nil map does.
func (a Augmentations) Put(key string, v any) {
	a[key] = v
}

// IsTrue reports whether the item stored under key is the boolean true.
func (a Augmentations) IsTrue(key string) bool {
	b, ok := a.Get(key).(bool)
	return ok && b
}
