package core

// Defaults for the pieces of the layout that are configurable. They match
// the historical gitrs behavior; override them with the platform options
// (WithControlDir, WithDefaultBranch, WithDescription).
const (
	DefaultControlDir  = ".gitrs"
	DefaultBranch      = "master"
	DefaultDescription = "Unnamed repository; edit this file 'description' to name the repository.\n"
)

// Entries of the control directory. These are layout constants, not
// configuration: every initialized repository contains exactly this
// skeleton.
const (
	BranchesDir = "branches"
	ObjectsDir  = "objects"
	RefsDir     = "refs"
	RefTagsDir  = "tags"
	RefHeadsDir = "heads"

	DescriptionFile = "description"
	HeadFile        = "HEAD"
	ConfigFile      = "config"
)

// SkeletonDirs returns the directory chains (as control-root-relative
// segment lists) created on initialization, in creation order.
func SkeletonDirs() [][]string {
	return [][]string{
		{BranchesDir},
		{ObjectsDir},
		{RefsDir, RefTagsDir},
		{RefsDir, RefHeadsDir},
	}
}

// HeadRef formats the symbolic reference seeded into HEAD for a branch,
// e.g. "ref: refs/heads/master\n". Ref paths always use forward slashes
// regardless of platform.
func HeadRef(branch string) string {
	return "ref: " + RefsDir + "/" + RefHeadsDir + "/" + branch + "\n"
}
