// Package output prints run progress for humans.
//
// Reporter implements runner.Reporter. Each event becomes one line on the
// output writer, styled from the styles package sheet. Colors are dropped
// when the writer is not a terminal, when NO_COLOR is set, or when the
// caller asks for plain output.
package output
