package testutil

import "github.com/arthur-debert/potbin/pkg/filesystem"

var osFS = filesystem.NewOS()
