// Package config locates and loads the fry-tempura config file.
//
// The config file supplies the default destination directories for the
// build and deploy commands. It can be written as JSON (with comments and
// trailing commas allowed, stripped with github.com/tidwall/jsonc before
// parsing) or as TOML. Both formats use the same keys:
//
//	{
//	  "templater": {
//	    "templateFolderLocation": "/vault/templates",
//	    "scriptFolderLocation": "/vault/scripts"
//	  },
//	  "runtime": { "source": "dist/fryTempura.js" }
//	}
package config
