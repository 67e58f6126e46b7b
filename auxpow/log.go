package auxpow

import "github.com/palladium-core/plmd/logger"

var log = logger.NewSubsystem("AUXP")
