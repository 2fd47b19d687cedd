/*
Package ja provides Japanese language support for deinflection: kana
classification and conversion, text normalization, furigana distribution,
and the Japanese deinflection descriptor (verb and adjective conditions
plus the transform tables for politeness, tense, voice and the other
inflectional categories).

# Description

Japanese is agglutinative: a single surface form like 食べさせられませんでした
stacks causative, passive, politeness, negation and tense onto one verb
stem. Deinflection therefore needs an unusually deep rule set; the
descriptor in this package declares 22 grammatical conditions and more
than fifty transforms, covering the ichidan/godan/irregular verb classes,
i-adjectives, and the intermediate -te/-ば/-ます forms the rules chain
through.

Input normalization is just as important: the same word may arrive in
halfwidth katakana, fullwidth Latin, with combining voicing marks, or
with emphatic repetitions (すっっごーーい). The text processors in this
package bring such variants into a canonical form before a search.

___________________________________________________________________________

# BSD License

# Copyright © 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

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
package ja
