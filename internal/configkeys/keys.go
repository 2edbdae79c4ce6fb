package configkeys

const (
	delimiter = "."

	EnvPrefix = "NOISEFN"

	NoisePrefix = "noise"

	NoiseSeed        = NoisePrefix + delimiter + "seed"
	NoiseOctaves     = NoisePrefix + delimiter + "octaves"
	NoiseFrequency   = NoisePrefix + delimiter + "frequency"
	NoiseLacunarity  = NoisePrefix + delimiter + "lacunarity"
	NoisePersistence = NoisePrefix + delimiter + "persistence"

	SamplerPrefix = "sampler"

	SamplerWidth   = SamplerPrefix + delimiter + "width"
	SamplerHeight  = SamplerPrefix + delimiter + "height"
	SamplerScale   = SamplerPrefix + delimiter + "scale"
	SamplerWorkers = SamplerPrefix + delimiter + "workers"

	LogPrefix = "log"

	LogLevel       = LogPrefix + delimiter + "level"
	LogDevelopment = LogPrefix + delimiter + "development"
)
