// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

// Id identifies a kind of failure with a Markdown guide.
type Id int

const (
	LicenseFileNotFoundId Id = iota + 1
	DirectoryExistsId
	PermissionDeniedId
	InvalidAnswersId
	CompileFailedId
	GitFailedId
	RemoteExistsId
	ConfigLoadFailedId
)

type (
	// MarkdownMsg is the Markdown body of an issue guide.
	MarkdownMsg string

	// Issue is a Markdown guide for one failure kind.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

// Id returns the issue identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw Markdown guide.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the guide for the terminal. stylePath is a glamour style
// name ("dark", "light", "notty", ...) or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	licenseFileNotFoundIssue = &Issue{
		id: LicenseFileNotFoundId,
		mdMsg: `
# License file not readable

The license text is read from the single path given on the command line.

## Things you can try:
- Check the path for typos; relative paths are resolved from the current directory
- Make sure the file is readable by your user
- Make sure the file is not empty; a package needs the full license text
~~~
$ license-generator ./LICENSE.txt
~~~`,
	}

	directoryExistsIssue = &Issue{
		id: DirectoryExistsId,
		mdMsg: `
# Package directory already exists

Each run creates exactly one new package in a directory named after the
package. An existing directory is never reused or overwritten.

## Things you can try:
- Move or remove the existing directory if it is a leftover of a failed run
- Run the generator from a different directory, or pass ` + "`--dir`" + ``,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied

The package directory could not be created or written.

## Things you can try:
- Check the permissions of the parent directory
- Choose a writable parent directory with ` + "`--dir`" + ``,
	}

	invalidAnswersIssue = &Issue{
		id: InvalidAnswersId,
		mdMsg: `
# Invalid answers

The answers file does not describe a valid package.

## Rules:
- ` + "`spdx_id`" + ` must be an identifier from the SPDX License List (case-sensitive)
- ` + "`short_name`" + ` and ` + "`version`" + ` must not contain whitespace
- ` + "`long_name`" + `, ` + "`author_name`" + ` and ` + "`author_email`" + ` are required
- ` + "`accept_waiver`" + ` must be true`,
	}

	compileFailedIssue = &Issue{
		id: CompileFailedId,
		mdMsg: `
# Module compilation failed

The generated module could not be converted to the compatibility form.
Nothing was written to disk.

## Things you can try:
- Run again with ` + "`--verbose`" + ` to see the compiler diagnostics
- Report the diagnostics together with the license file that triggered them`,
	}

	gitFailedIssue = &Issue{
		id: GitFailedId,
		mdMsg: `
# Repository creation failed

The package files were written, but the git repository could not be
initialized or committed. The directory was left in place.

## Things you can try:
- Inspect the package directory and remove it before running again
- Check that your author name and email are valid`,
	}

	remoteExistsIssue = &Issue{
		id: RemoteExistsId,
		mdMsg: `
# Remote already configured

The repository already has an ` + "`origin`" + ` remote. The generator only
creates brand-new repositories.

## Things you can try:
- Remove the package directory and run again`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

## Things you can try:
- Check the CUE syntax of your config file
- Compare it with the defaults:
~~~cue
namespace:      "license-project"
default_branch: "main"
waiver_file:    ""
ui: {
	theme:      "default"
	accessible: false
	verbose:    false
}
~~~`,
	}

	issues = map[Id]*Issue{
		licenseFileNotFoundIssue.Id(): licenseFileNotFoundIssue,
		directoryExistsIssue.Id():     directoryExistsIssue,
		permissionDeniedIssue.Id():    permissionDeniedIssue,
		invalidAnswersIssue.Id():      invalidAnswersIssue,
		compileFailedIssue.Id():       compileFailedIssue,
		gitFailedIssue.Id():           gitFailedIssue,
		remoteExistsIssue.Id():        remoteExistsIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

// Values returns every issue, ordered by Id.
func Values() []*Issue {
	out := slices.Collect(maps.Values(issues))
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the issue for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
