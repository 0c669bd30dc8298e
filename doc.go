/*
Package seed7 is the core of an interpreter for the Seed7 programming language.

It implements the object representation, a reference-counted object lifetime
model, the declaration graph with its overload resolution engine, and an
executor which walks resolved call trees. Package structure is as follows:

■ object: Package object implements the universal runtime value, lists,
types, blocks and entities.

■ runtime: Package runtime holds the interpreter context: fail state,
declaration levels, diagnostics and options.

■ memory: Package memory builds temporary objects and destroys them.

■ decl: Package decl implements the declaration trie and name entry.

■ match: Package match resolves expressions against the declaration trie.

■ exec: Package exec evaluates resolved call trees.

■ action: Package action is the registry of primitive actions.

■ interp: Package interp ties everything together into a program.

■ s7lang: Package s7lang is a tiny front end to play with the core.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seed7
