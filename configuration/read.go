// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bitmark-inc/treeedit/fault"
)

// ParseConfigurationFile - read a configuration file selecting the
// parser from the file extension and assign the results to a
// configuration structure
//
// fields not present in the file keep their previous values, so
// defaults should be set before calling
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	if rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".lua", ".conf":
		return readLuaFile(fileName, config)
	case ".yaml", ".yml":
		return readYAMLFile(fileName, config)
	default:
		return fault.ErrUnsupportedConfigFormat
	}
}
