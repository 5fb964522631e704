package sources

import (
	"github.com/reusee/dscope"
	"github.com/saphereye/bff/configs"
	"github.com/saphereye/bff/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
