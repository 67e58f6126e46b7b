package validate

import "github.com/palladium-core/plmd/logger"

var log = logger.NewSubsystem("VLDT")
