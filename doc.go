// Package xopts resolves program options from the command line, an INI
// configuration file and defaults declared by the program.
//
// # Overview
//
// A program declares its options once, on a Session. Each option lives in a
// section of the configuration file and may also be exposed as a command
// line flag. Values are resolved with a fixed precedence:
//  1. Command line flags
//  2. The configuration file
//  3. Defaults given at definition time
//
// Every resolved option remembers which of the three sources set it.
//
// # Quick Start
//
//	s := xopts.New()
//
//	s.MustDefine(schema.Option{Section: "server", Name: "host", Default: schema.Default("localhost"), CmdName: "host"})
//	s.MustDefine(schema.Option{Section: "server", Name: "port", Kind: schema.Int, Default: schema.Default(8080), CmdName: "port", CmdShortName: "p"})
//	s.MustDefine(schema.Option{Section: "cmd", Name: "config", CmdName: "config", CmdShortName: "c", IsConfigFile: true, Default: schema.Default("/etc/app.conf")})
//	s.MustDefine(schema.Option{Section: "cmd", Name: "help", Kind: schema.Bool, CmdName: "help", CmdShortName: "h", IsHelp: true, CmdGroup: "help"})
//
//	s.Init(nil)
//
//	fmt.Println(s.String("server", "host"), s.Int("server", "port"))
//
// Init parses os.Args, reads the configuration file named by the
// IsConfigFile option, applies defaults and checks that every required
// option has a value. On bad input it prints the problem with the usage
// text and exits with status 64.
//
// # Options
//
// An option without a default is required, except booleans, which default
// to false. CmdOnly options are never read from the configuration file; the
// IsConfigFile and IsHelp options are always command line only.
//
// Boolean flags take no value: their presence sets them to true. In the
// configuration file booleans accept 1/yes/true/on and 0/no/false/off.
//
// # Positional Arguments
//
//	s.DefineArgs(schema.CountArgs(schema.OneOrMore, "file"))
//	s.DefineArgs(schema.NamedArgs("src", "dst"))
//
// # Step by Step
//
// Init is a shortcut for the following calls, which can be made one by one
// to handle errors differently:
//
//	err := s.ParseArgs(os.Args[1:])
//	err = s.ParseConfig("")   // "" reads the discovered config file
//	err = s.SetDefaults()
//	err = s.Verify()
//
// Errors caused by bad input are *schema.UserError; mistakes in option
// definitions are *schema.DefinitionError.
//
// # Documentation Generation
//
//	fmt.Println(s.Usage())
//	err := s.WriteSampleConfig("app.conf.sample")
//	os.WriteFile("OPTIONS.md", []byte(s.Markdown()), 0644)
//
// # Custom Plugins
//
// Extra sources implement plugins.Visitor and run after the defaults pass:
//
//	type envPlugin struct {
//	    state *schema.State
//	}
//
//	func (p *envPlugin) Visit(state *schema.State) error {
//	    p.state = state
//	    return nil
//	}
//
//	func (p *envPlugin) Parse() error {
//	    // Assign values with p.state.Assign
//	    return nil
//	}
//
//	s := xopts.New(xopts.WithPlugins(&envPlugin{}))
package xopts
