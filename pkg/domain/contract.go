package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// CompiledContract is the output of the Solidity compiler for a single
// contract: its name, the raw ABI document and the creation bytecode.
type CompiledContract struct {
	// Name is the contract name as declared in the source file.
	Name string `json:"contractName"`
	// SourcePath is the file the contract was compiled from.
	SourcePath string `json:"sourcePath"`
	// ABI is the JSON ABI exactly as emitted by the compiler.
	ABI json.RawMessage `json:"abi"`
	// Bytecode is the creation bytecode, hex encoded with a 0x prefix.
	Bytecode string `json:"bytecode"`
	// CompilerVersion is the full solc version string used for compilation.
	CompilerVersion string `json:"compilerVersion"`
}

// HasBytecode reports whether the contract produced deployable code. Abstract
// contracts and interfaces compile to an empty bytecode.
func (c CompiledContract) HasBytecode() bool {
	return strings.TrimPrefix(c.Bytecode, "0x") != ""
}

// DeploymentDetails is the document written after a single contract
// deployment (deployment_details.json).
type DeploymentDetails struct {
	ContractName    string          `json:"contractName"`
	ContractAddress string          `json:"contractAddress"`
	ABI             json.RawMessage `json:"abi"`
}

// DeployedContract is a single entry of deployed_contracts.json.
type DeployedContract struct {
	Address string          `json:"address"`
	ABI     json.RawMessage `json:"abi"`
}

// DeployedContracts maps contract names to their deployed address and ABI. It
// is written by multi-contract deployments and consumed by the provisioner.
type DeployedContracts map[string]DeployedContract

// Names returns the contract names in lexical order.
func (d DeployedContracts) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
