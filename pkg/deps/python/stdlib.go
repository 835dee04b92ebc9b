package python

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPythonVersion is the target version when none is configured.
const DefaultPythonVersion = "3.12"

// SupportedPythonVersions lists the versions with a known stdlib module set.
var SupportedPythonVersions = []string{"3.8", "3.9", "3.10", "3.11", "3.12", "3.13"}

// stdlibCommon holds top-level modules present in every supported version.
var stdlibCommon = []string{
	"__future__", "__main__", "_abc", "_ast", "_asyncio", "_bisect", "_blake2",
	"_bz2", "_codecs", "_collections", "_collections_abc", "_compat_pickle",
	"_compression", "_contextvars", "_csv", "_ctypes", "_curses", "_datetime",
	"_decimal", "_elementtree", "_functools", "_hashlib", "_heapq", "_imp", "_io",
	"_json", "_locale", "_lsprof", "_lzma", "_markupbase", "_md5", "_multiprocessing",
	"_opcode", "_operator", "_osx_support", "_pickle", "_posixsubprocess", "_py_abc",
	"_pydecimal", "_pyio", "_queue", "_random", "_sha1", "_sha256", "_sha3", "_sha512",
	"_signal", "_sitebuiltins", "_socket", "_sqlite3", "_sre", "_ssl", "_stat",
	"_string", "_strptime", "_struct", "_symtable", "_thread", "_threading_local",
	"_tkinter", "_tracemalloc", "_uuid", "_warnings", "_weakref", "_weakrefset",
	"_winapi", "_zoneinfo",
	"abc", "antigravity", "argparse", "array", "ast", "asyncio", "atexit",
	"base64", "bdb", "binascii", "bisect", "builtins", "bz2",
	"cProfile", "calendar", "cmath", "cmd", "code", "codecs", "codeop",
	"collections", "colorsys", "compileall", "concurrent", "configparser",
	"contextlib", "contextvars", "copy", "copyreg", "csv", "ctypes", "curses",
	"dataclasses", "datetime", "dbm", "decimal", "difflib", "dis", "doctest",
	"email", "encodings", "ensurepip", "enum", "errno",
	"faulthandler", "fcntl", "filecmp", "fileinput", "fnmatch", "fractions", "ftplib",
	"functools", "gc", "genericpath", "getopt", "getpass", "gettext", "glob", "grp",
	"gzip", "hashlib", "heapq", "hmac", "html", "http", "idlelib", "imaplib",
	"importlib", "inspect", "io", "ipaddress", "itertools", "json", "keyword",
	"linecache", "locale", "logging", "lzma", "mailbox", "marshal", "math",
	"mimetypes", "mmap", "modulefinder", "msvcrt", "multiprocessing", "netrc", "nt",
	"ntpath", "nturl2path", "numbers", "opcode", "operator", "optparse", "os",
	"pathlib", "pdb", "pickle", "pickletools", "pkgutil", "platform", "plistlib",
	"poplib", "posix", "posixpath", "pprint", "profile", "pstats", "pty", "pwd",
	"py_compile", "pyclbr", "pydoc", "pydoc_data", "pyexpat", "queue", "quopri",
	"random", "re", "readline", "reprlib", "resource", "rlcompleter", "runpy",
	"sched", "secrets", "select", "selectors", "shelve", "shlex", "shutil", "signal",
	"site", "smtplib", "socket", "socketserver", "sqlite3", "sre_compile",
	"sre_constants", "sre_parse", "ssl", "stat", "statistics", "string", "stringprep",
	"struct", "subprocess", "symtable", "sys", "sysconfig", "syslog", "tabnanny",
	"tarfile", "tempfile", "termios", "textwrap", "this", "threading", "time",
	"timeit", "tkinter", "token", "tokenize", "trace", "traceback", "tracemalloc",
	"tty", "turtle", "turtledemo", "types", "typing", "unicodedata", "unittest",
	"urllib", "uuid", "venv", "warnings", "wave", "weakref", "webbrowser", "winreg",
	"winsound", "wsgiref", "xml", "xmlrpc", "zipapp", "zipfile", "zipimport", "zlib",
}

// span bounds the minor versions [since, until) a module exists in.
// Zero means unbounded on that side.
type span struct{ since, until int }

// stdlibVersioned holds modules added or removed within the supported range.
var stdlibVersioned = map[string]span{
	// Added
	"graphlib":    {since: 9},
	"zoneinfo":    {since: 9},
	"tomllib":     {since: 11},
	"_tokenize":   {since: 11},
	"_pydatetime": {since: 12},
	"_pylong":     {since: 12},
	"_colorize":   {since: 13},
	"_pyrepl":     {since: 13},

	// Removed
	"_dummy_thread":   {until: 9},
	"dummy_threading": {until: 9},
	"formatter":       {until: 10},
	"parser":          {until: 10},
	"symbol":          {until: 10},
	"binhex":          {until: 11},
	"asynchat":        {until: 12},
	"asyncore":        {until: 12},
	"distutils":       {until: 12},
	"imp":             {until: 12},
	"smtpd":           {until: 12},
	"aifc":            {until: 13},
	"audioop":         {until: 13},
	"cgi":             {until: 13},
	"cgitb":           {until: 13},
	"chunk":           {until: 13},
	"crypt":           {until: 13},
	"imghdr":          {until: 13},
	"lib2to3":         {until: 13},
	"mailcap":         {until: 13},
	"msilib":          {until: 13},
	"nis":             {until: 13},
	"nntplib":         {until: 13},
	"ossaudiodev":     {until: 13},
	"pipes":           {until: 13},
	"sndhdr":          {until: 13},
	"spwd":            {until: 13},
	"sunau":           {until: 13},
	"telnetlib":       {until: 13},
	"uu":              {until: 13},
	"xdrlib":          {until: 13},
}

// StdlibModules returns the top-level standard-library module names of the
// given Python 3 version ("3.8" through "3.13").
func StdlibModules(version string) (map[string]bool, error) {
	minor, err := parseMinor(version)
	if err != nil {
		return nil, err
	}

	mods := make(map[string]bool, len(stdlibCommon)+len(stdlibVersioned))
	for _, m := range stdlibCommon {
		mods[m] = true
	}
	for m, s := range stdlibVersioned {
		if (s.since == 0 || minor >= s.since) && (s.until == 0 || minor < s.until) {
			mods[m] = true
		}
	}
	return mods, nil
}

// IsSupportedPythonVersion reports whether version has a stdlib list.
func IsSupportedPythonVersion(version string) bool {
	_, err := parseMinor(version)
	return err == nil
}

func parseMinor(version string) (int, error) {
	major, minorStr, ok := strings.Cut(strings.TrimSpace(version), ".")
	if !ok || major != "3" {
		return 0, fmt.Errorf("unsupported python version %q (supported: %s)", version, strings.Join(SupportedPythonVersions, ", "))
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil || minor < 8 || minor > 13 {
		return 0, fmt.Errorf("unsupported python version %q (supported: %s)", version, strings.Join(SupportedPythonVersions, ", "))
	}
	return minor, nil
}
