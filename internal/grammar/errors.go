package grammar

import "errors"

// ErrUnknownGrammar is returned when no grammar matches a name or path.
var ErrUnknownGrammar = errors.New("unknown grammar")
