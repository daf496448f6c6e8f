package sources

import (
	"path/filepath"

	"github.com/reusee/contra/cmds"
)

var filesFlag []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil || len(paths) == 0 {
			// keep the pattern so that loading reports the missing file
			filesFlag = append(filesFlag, pattern)
		} else {
			filesFlag = append(filesFlag, paths...)
		}
	}).Desc("compile files matching the pattern; directories are searched for *" + Ext + " files"))
}

// Files are the paths named on the command line.
type Files []string

func (Module) Files() Files {
	return Files(filesFlag)
}

// AddFile appends a path as if it were passed with -file.
func AddFile(path string) {
	filesFlag = append(filesFlag, path)
}
