package config

// EditorCommand resolves the log message editor command.
//
// Resolution rules (svn's order, with the config file slotted in):
//  1. flagCmd (--editor-cmd)
//  2. $SVN_EDITOR
//  3. cfg.Editor (config file or $SHELF_EDITOR)
//  4. $VISUAL
//  5. $EDITOR
//
// Returns "" when none is set. The command may contain arguments; it is
// split by the caller.
func (c Config) EditorCommand(flagCmd string, getenv func(string) string) string {
	if flagCmd != "" {
		return flagCmd
	}
	if cmd := getenv("SVN_EDITOR"); cmd != "" {
		return cmd
	}
	if c.Editor != "" {
		return c.Editor
	}
	if cmd := getenv("VISUAL"); cmd != "" {
		return cmd
	}
	return getenv("EDITOR")
}
