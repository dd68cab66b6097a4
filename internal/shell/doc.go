// Package shell covers what cmd-baker needs from the user's login shell:
// the default shebang, the rc file that receives the PATH export line, and
// launching an interactive shell or editor.
package shell
