package api

import "errors"

// ErrorDuplicateKey insert cannot succeed because the key is already
// present and the index is configured to reject duplicates.
var ErrorDuplicateKey = errors.New("duplicateKey")

// DuplicateOverwrite policy replaces the value of an existing key.
const DuplicateOverwrite = "overwrite"

// DuplicateReject policy fails the insert of an existing key.
const DuplicateReject = "reject"
