package credential

import "errors"

// ErrIncompleteBuilder is returned by Build when bases or the attribute
// witness have not been set.
var ErrIncompleteBuilder = errors.New("credential: builder missing bases or attribute")
