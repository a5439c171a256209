package solc_test

import (
	"ayurdeploy/pkg/logger"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const combinedJSON = `{
  "contracts": {
    "contracts/Herbs.sol:Herbs": {
      "abi": [{"inputs":[],"name":"get","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"pure","type":"function"}],
      "bin": "600a600c600039600a6000f3602a60005260206000f3"
    },
    "contracts/Herbs.sol:IHerbs": {
      "abi": [],
      "bin": ""
    },
    "contracts/Base.sol:Base": {
      "abi": [],
      "bin": "6080604052"
    }
  },
  "version": "0.8.20+commit.a1b79de6.Linux.g++"
}`

const versionOutput = `solc, the solidity compiler commandline interface
Version: 0.8.20+commit.a1b79de6.Linux.g++
`

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	os.Exit(m.Run())
}

// writeFakeSolc writes a shell script standing in for solc. It prints the
// version banner for --version and runs body otherwise.
func writeFakeSolc(t *testing.T, dir, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake solc relies on /bin/sh")
	}

	script := "#!/bin/sh\n" +
		"if [ \"$1\" = \"--version\" ]; then\n" +
		"cat <<'EOF'\n" + versionOutput + "EOF\n" +
		"exit 0\n" +
		"fi\n" +
		body + "\n"

	path := filepath.Join(dir, "solc")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil { //nolint: gosec
		t.Fatal(err)
	}

	return path
}
