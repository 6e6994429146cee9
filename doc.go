// Package rpn implements a single-precision calculator for infix arithmetic.
//
// Evaluation is a pipeline of four stages. Tokenize splits text into tokens,
// Validate decides which signs are binary operators, Convert reorders the
// tokens into postfix (Reverse Polish) order with Dijkstra's shunting-yard
// algorithm, and Evaluate reduces the postfix program on a value stack.
// "(1+-1.1)*2/3>>4<<5" is a valid expression. So is "max(2, sqrt 9)".
//
// Each stage can be called on its own, or a Calculator runs all of them.
package rpn
