package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PrettyJson serializa o valor com indentação, para logs de depuração
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			fmt.Println(err)
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		fmt.Println(err)
	}

	return out.String()
}
