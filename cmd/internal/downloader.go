package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/mholt/archiver/v3"
)

type DownloadExecutableOptions struct {
	ExecutableName string
	Version        string

	SkipCache bool

	FileName string
	/*
		Example: "golangci-lint-{version}-{os}-{arch}.{osArchiveType}"
		Supported template variables:
			- os            - runtime.GOOS
			- arch          - runtime.GOARCH
			- version       - Version
			- osArchiveType - `tar.gz` or `zip` - determined by runtime.GOOS
	*/
	FileNameTemplate string

	ReleaseBinaryUrl string
	// Same variables as FileNameTemplate plus {fileName}.
	ReleaseBinaryUrlTemplate string

	// Empty when the downloaded file is the executable itself.
	BinaryPathInside string
	// Same variables as ReleaseBinaryUrlTemplate plus {executableName} and {executableExtension}.
	BinaryPathInsideTemplate string

	DestinationDirectory string

	InfoPrinter func(string)
}

// DownloadExecutable fetches a release archive, unpacks it with archiver and
// copies the executable into DestinationDirectory. A cached copy is reused
// unless SkipCache is set.
func DownloadExecutable(opts DownloadExecutableOptions) (string, error) {
	if opts.ExecutableName == "" {
		return "", fmt.Errorf("executableName can't be empty")
	}
	if opts.Version == "" {
		return "", fmt.Errorf("version can't be empty")
	}
	if opts.InfoPrinter == nil {
		opts.InfoPrinter = func(string) {}
	}
	parsedOpts, evaluationErr := evaluateTemplates(opts)
	if evaluationErr != nil {
		return "", evaluationErr
	}
	return downloadWithOpts(parsedOpts)
}

func downloadWithOpts(opts DownloadExecutableOptions) (string, error) {
	destinationDir := opts.DestinationDirectory
	if !filepath.IsAbs(destinationDir) {
		currentPath, currentPathErr := os.Getwd()
		if currentPathErr != nil {
			return "", fmt.Errorf("can't determine current work dir path: %v", currentPathErr)
		}
		destinationDir = filepath.Join(currentPath, destinationDir)
	}
	destination := filepath.Join(destinationDir, opts.ExecutableName+osExecutableType())
	if !opts.SkipCache {
		if _, err := os.Stat(destination); err == nil {
			opts.InfoPrinter("skip download. Use file from cache")
			return destination, nil
		}
	}

	downloadedFilePath, downloadErr := downloadFile(opts)
	if downloadErr != nil {
		return "", fmt.Errorf("can't download: %v", downloadErr)
	}
	filePath, decompressErr := decompressIfNecessary(opts, downloadedFilePath)
	if decompressErr != nil {
		return "", fmt.Errorf("can't decompress. file: %v; error: %v", downloadedFilePath, decompressErr)
	}

	// os.Rename fails across disks on Windows, so the file is copied by hand.
	sourceFile, sourceErr := os.Open(filePath)
	if sourceErr != nil {
		return "", fmt.Errorf("can't open source file %v: %v", filePath, sourceErr)
	}
	defer func() {
		_ = sourceFile.Close()
	}()

	mkdirErr := os.MkdirAll(destinationDir, os.ModePerm)
	if mkdirErr != nil {
		return "", fmt.Errorf("can't create dir: %v", mkdirErr)
	}
	destinationFile, destinationErr := os.OpenFile(destination, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0777)
	if destinationErr != nil {
		return "", fmt.Errorf("can't create destination file %v: %v", destination, destinationErr)
	}
	defer func() {
		_ = destinationFile.Close()
	}()

	_, copyErr := io.Copy(destinationFile, sourceFile)
	if copyErr != nil {
		return "", fmt.Errorf("can't copy file from %v to %v: %v", filePath, destination, copyErr)
	}
	return destination, nil
}

func decompressIfNecessary(opts DownloadExecutableOptions, archivePath string) (string, error) {
	if opts.BinaryPathInside == "" {
		return archivePath, nil
	}
	dirPath := filepath.Join(os.TempDir(), strconv.FormatInt(time.Now().UnixNano(), 10))
	mkErr := os.Mkdir(dirPath, os.ModePerm)
	if mkErr != nil {
		return "", mkErr
	}
	decompressionErr := archiver.Unarchive(archivePath, dirPath)
	if decompressionErr != nil {
		return "", fmt.Errorf("can't decompress file. File: %v; Error: %v", archivePath, decompressionErr)
	}
	return filepath.Join(dirPath, opts.BinaryPathInside), nil
}

func downloadFile(opts DownloadExecutableOptions) (string, error) {
	opts.InfoPrinter("going to download file from: " + opts.ReleaseBinaryUrl)
	client := &http.Client{Timeout: 5 * time.Minute}
	resp, getErr := client.Get(opts.ReleaseBinaryUrl)
	if getErr != nil {
		return "", fmt.Errorf("can't get file. URL: `%v`; Error: %v", opts.ReleaseBinaryUrl, getErr)
	}
	respBody := resp.Body
	defer respBody.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("can't get file. URL: `%v`; Code: %v", opts.ReleaseBinaryUrl, resp.Status)
	}

	// archiver picks the format by extension, so the temp file keeps the original name as suffix
	destFile, tempFileErr := ioutil.TempFile("", "*-"+opts.FileName)
	if tempFileErr != nil {
		return "", fmt.Errorf("can't store file. URL: `%v`; Error: %v", opts.ReleaseBinaryUrl, tempFileErr)
	}
	defer destFile.Close()

	_, copyErr := io.Copy(destFile, respBody)
	if copyErr != nil {
		return "", fmt.Errorf("can't download file. URL: `%v`; Error: %v", opts.ReleaseBinaryUrl, copyErr)
	}
	return destFile.Name(), nil
}

func evaluateTemplates(opts DownloadExecutableOptions) (DownloadExecutableOptions, error) {
	vars := []string{
		"{os}", runtime.GOOS,
		"{arch}", runtime.GOARCH,
		"{version}", opts.Version,
		"{osArchiveType}", osArchiveType(),
	}
	fileName, fileNameErr := resolve("FileName", opts.FileName, opts.FileNameTemplate, vars)
	if fileNameErr != nil {
		return DownloadExecutableOptions{}, fileNameErr
	}
	opts.FileName = fileName

	vars = append(vars, "{fileName}", opts.FileName)
	releaseBinaryUrl, urlErr := resolve("ReleaseBinaryUrl", opts.ReleaseBinaryUrl, opts.ReleaseBinaryUrlTemplate, vars)
	if urlErr != nil {
		return DownloadExecutableOptions{}, urlErr
	}
	opts.ReleaseBinaryUrl = releaseBinaryUrl

	if opts.BinaryPathInside == "" && opts.BinaryPathInsideTemplate != "" {
		vars = append(vars, "{executableName}", opts.ExecutableName, "{executableExtension}", osExecutableType())
		opts.BinaryPathInside = strings.NewReplacer(vars...).Replace(opts.BinaryPathInsideTemplate)
	}
	for _, resolved := range []string{opts.FileName, opts.ReleaseBinaryUrl, opts.BinaryPathInside} {
		if resolved != "" {
			opts.InfoPrinter("resolved: " + resolved)
		}
	}
	return opts, nil
}

func resolve(field string, value string, template string, vars []string) (string, error) {
	if value != "" {
		return value, nil
	}
	if template == "" {
		return "", fmt.Errorf("can't resolve %v from template. Template is empty", field)
	}
	return strings.NewReplacer(vars...).Replace(template), nil
}

func osArchiveType() string {
	if runtime.GOOS == "windows" {
		return "zip"
	}
	return "tar.gz"
}

func osExecutableType() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
