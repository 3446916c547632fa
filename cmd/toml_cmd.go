package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dzjyyds666/tq/parse"
	"github.com/dzjyyds666/tq/parse/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type TomlParams struct {
	Find   string `json:"find"`   // 查找的key
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
}

var params *TomlParams

var tomlCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml parse tools",
	Run:   tomlRun,
}

func init() {
	params = &TomlParams{}
	tomlCmd.Flags().StringVarP(&params.Find, "find", "f", "", "find")
	tomlCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	tomlCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
}

func tomlRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	root, err := parse.TomlFile(params.Input, nil)
	if err != nil {
		fmt.Println("parse toml error:", err)
		return
	}

	if len(params.Find) > 0 {
		n, ok := toml.Get(root, strings.Split(params.Find, ".")...)
		if !ok {
			fmt.Println("key not found:", params.Find)
			return
		}
		fmt.Println(toml.ToUntyped(n))
		return
	}

	data, err := convertTree(root, params.Output)
	if err != nil {
		fmt.Println("convert error:", err)
		return
	}
	if len(params.Output) == 0 {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(params.Output, data, 0o644); err != nil {
		fmt.Println("write output error:", err)
	}
}

// convertTree 根据输出文件的扩展名选择 YAML 或 JSON
func convertTree(root *toml.Table, outPath string) ([]byte, error) {
	untyped := toml.ToUntyped(root)
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".yaml", ".yml":
		return yaml.Marshal(untyped)
	default:
		return json.MarshalIndent(untyped, "", "  ")
	}
}
