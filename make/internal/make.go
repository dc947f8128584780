package main

const CoverageName = `coverage.out`
const expectedDir = `./generator/internal/testdata/expected`

var B = NewBuild(BuildOptions{})
var Commands = []Command{
	{Name: `build`, Body: B.RunCmd(
		Go, `build`, `./...`,
	)},

	{Name: `vet`, Body: B.RunCmd(
		Go, `vet`, `./...`,
	)},

	{Name: `test`, Body: B.RunCmd(
		Go, `test`, `./...`,
	)},

	{Name: `testDebug`, Body: B.RunCmd(
		Go, `test`, `-v`, `./...`,
	)},

	{Name: `coverage`, Body: func() {
		clean()
		B.Run(Go, `test`, `-coverpkg=./...`, `-coverprofile=`+CoverageName, `./...`)
		B.Run(Go, `tool`, `cover`, `-html=`+CoverageName)
	}},

	{Name: `goldens`, Body: regenerateGoldens},

	{Name: `clean`, Body: clean},
}

// regenerateGoldens rewrites the expected literals used by the generator tests.
func regenerateGoldens() {
	for _, preset := range []string{`ring176`, `ring192`} {
		B.ShRun(Go, `run`, `./generator`, `-preset`, preset, `>`, expectedDir+`/`+preset+`.txt`)
	}
}

func clean() {
	B.Once(`cleanOnce`, func() {
		B.Run(Go, `clean`)
		B.Run(`rm`, `-f`, CoverageName)
	})
}

func main() {
	B.Register(Commands)
	B.BuildFromOsArgs()
}
