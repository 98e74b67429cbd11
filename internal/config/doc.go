// Package config loads EpicEditor configuration from host application
// configuration files.
//
// A host file is a YAML or JSON document shared by several components. The
// editor reads only the section stored under the scar_epic_editor key and
// leaves every other top-level key alone:
//
//	framework:
//	  secret: s3cr3t
//	scar_epic_editor:
//	  config:
//	    autogrow: true
//	    file:
//	      auto_save: "500"
//
// # Basic Usage
//
// [Load] merges any number of files, in order, over the editor defaults and
// returns the merged document together with its typed view:
//
//	res, err := config.Load("config/config.yml", "config/config_prod.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res.Options.Config.Autogrow          // true
//	res.Document.Get("config.file.name") // "epiceditor", the default
//
// Later files win per key; groups are merged key by key, so a file setting
// only config.theme.base keeps the other theme defaults.
//
// # Errors
//
// Reading errors wrap [ErrFileNotFound], [ErrUnsupportedFileType] or
// [ErrParse]. Merge problems wrap schema.ErrTypeMismatch or
// schema.ErrUnknownKey and name the dotted path of the key at fault. Unknown
// keys are rejected unless the [Loader] is built with a merger that ignores
// them.
package config
