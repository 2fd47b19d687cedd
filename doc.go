/*
Package deinflect is about morphological deinflection of natural languages.

# Description

Dictionaries store words in their canonical form: an infinitive, a plain
present, a singular. Users hand us something else entirely: a conjugated
verb, a declined noun, a politeness form. Deinflection is the inverse of
inflection: given a surface form, search backward through a language's
inflectional rules and recover every plausible dictionary-form candidate,
together with the chain of transformations ("reasons") that would have
produced the surface form.

The approach is language-agnostic. A language is described declaratively by
a LanguageDescriptor: a set of grammatical conditions (verb classes,
adjective classes, intermediate forms such as the Japanese -te form), each
encoded as a bit in a machine word, and a set of transforms, each a named,
ordered group of rewrite rules. A rule rewrites an inflected surface to a
less inflected one and is guarded by input/output condition masks. The
transformer in package deinflect/transformer performs a breadth-first
search over these rules; this package holds the data model the search runs
on, the text processor protocol used to normalize input before a search,
and a handful of processors shared between languages.

Descriptors for Japanese, English and Spanish live in the packages
deinflect/ja, deinflect/en and deinflect/es. Package deinflect/cjk collects
the Unicode range tables used to classify CJK text.

# Typical Usage

Clients will usually not assemble descriptors themselves, but instantiate
the multi-language transformer and hand it text:

	mlt, err := transformer.NewMultiTransformer()
	if err != nil { ... }
	for _, cand := range mlt.Transform("ja", "食べさせられた") {
	   // cand.Text is a dictionary-form candidate,
	   // cand.Trace the chain of inflections that explains the input
	}

# BSD License

# Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package deinflect
