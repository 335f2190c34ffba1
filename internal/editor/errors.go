package editor

import "errors"

var ErrNoExporter = errors.New("no export engine attached to session")
