package debugs

import (
	"github.com/reusee/dscope"
	"github.com/saphereye/bff/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
