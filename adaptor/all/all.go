package all

import (
	// Initialize all adaptors by importing this package
	_ "github.com/stageflow/stageflow/adaptor/consumer"
	_ "github.com/stageflow/stageflow/adaptor/generator"
	_ "github.com/stageflow/stageflow/adaptor/stdio"
	_ "github.com/stageflow/stageflow/adaptor/transformer"
)
