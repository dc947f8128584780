package main

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/gen2brain/beeep"
	. "github.com/storozhukBM/build"
)

const coverageName = `coverage.out`
const generatorToolName = `ringgen`
const binDirName = `bin`
const linterName = `golangci-lint`
const linterVersion = `v1.23.3`
const expectedDir = `./generator/internal/testdata/expected`
const scratchDir = `./bin/generated`

var parallelism = strconv.Itoa(runtime.NumCPU() * 4)

var b = NewBuild(BuildOptions{})
var commands = []Command{
	{`build`, b.RunCmd(Go, `build`, `./...`)},

	{`clean`, clean},
	{`cleanAll`, func() { clean(); cleanExecutables() }},
	{`buildGenerator`, buildGenerator},
	{`testSampler`, testSampler},
	{`testGenerator`, testGenerator},
	{`test`, func() { testSampler(); testGenerator() }},
	{`generateTables`, generateTables},
	{`checkGoldens`, checkGoldens},

	{`lint`, cilint},

	{`coverage`, func() {
		clean()
		b.Run(Go, `test`, `-coverpkg=./...`, `-coverprofile=`+coverageName, `./...`)
		b.Run(Go, `tool`, `cover`, `-html=`+coverageName)
	}},

	{`ci`, func() {
		cilint()
		testSampler()
		testGenerator()
		checkGoldens()
		notify(`ringgen`, `ci finished`)
	}},
}

func buildGenerator() {
	b.Once(`buildGeneratorOnce`, func() {
		b.Run(Go, `build`, `-o`, generatorToolName, `./generator`)
	})
}

func testSampler() {
	b.Run(Go, `test`, `-parallel`, parallelism, `.`)
}

func testGenerator() {
	defer forceClean()
	b.Run(Go, `test`, `-parallel`, parallelism, `./generator/...`)
}

// generateTables renders every preset into a scratch package and builds it,
// so a table that gofmt or the compiler would reject fails the build.
func generateTables() {
	buildGenerator()
	b.Run(`mkdir`, `-p`, scratchDir)
	for _, preset := range []string{`ring176`, `ring192`, `seconds1080`, `hours1080`, `seconds192`, `hours192`} {
		b.Run(
			`./`+generatorToolName,
			`-preset`, preset,
			`-name`, preset+`Circles`,
			`-type`, `int32`,
			`-pkg`, `generated`,
			`-dir`, scratchDir,
		)
	}
	b.Run(Go, `build`, scratchDir)
}

// checkGoldens fails when the checked-in literals drift from the generator output.
func checkGoldens() {
	buildGenerator()
	for _, preset := range []string{`ring176`, `ring192`} {
		b.ShRun(
			`./`+generatorToolName, `-preset`, preset,
			`|`, `diff`, `-u`, expectedDir+`/`+preset+`.txt`, `-`,
		)
	}
}

func clean() {
	b.Once(`cleanOnce`, func() { forceClean() })
}

func forceClean() {
	b.Run(Go, `clean`, `./...`)
	b.Run(`rm`, `-f`, coverageName)
	b.Run(`rm`, `-f`, generatorToolName)
	// sh run used to expand wildcard
	b.ForceShRun(`rm`, `-f`, scratchDir+`/*.circles.go`)
}

func cleanExecutables() {
	b.Run(`rm`, `-rf`, binDirName)
}

func cilint() {
	executable, downloadErr := DownloadExecutable(DownloadExecutableOptions{
		ExecutableName:           linterName,
		Version:                  linterVersion[1:],
		FileNameTemplate:         `golangci-lint-{version}-{os}-{arch}.{osArchiveType}`,
		ReleaseBinaryUrlTemplate: `https://github.com/golangci/golangci-lint/releases/download/v{version}/{fileName}`,
		BinaryPathInsideTemplate: `golangci-lint-{version}-{os}-{arch}/{executableName}{executableExtension}`,
		DestinationDirectory:     binDirName,
		InfoPrinter:              b.Info,
	})
	if downloadErr != nil {
		b.AddError(downloadErr)
		return
	}
	b.Run(executable, `-j`, parallelism, `run`)
}

func notify(title string, msg string) {
	if notifyErr := beeep.Notify(title, msg, ""); notifyErr != nil {
		b.Info(fmt.Sprintf("can't send notification: %v", notifyErr))
	}
}

func main() {
	b.Register(commands)
	b.BuildFromOsArgs()
}
