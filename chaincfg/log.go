package chaincfg

import "github.com/palladium-core/plmd/logger"

var log = logger.NewSubsystem("CCFG")
