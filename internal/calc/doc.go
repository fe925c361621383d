/*
Package calc parses arithmetic expressions into syntax trees.

Grammar

	equation    --> expr EOF ;
	expr        --> atom ( bin_op atom )* ;
	atom        --> integer
	              | unary_minus
	              | group ;
	integer     --> DIGIT+ ;
	unary_minus --> "-" atom ;
	group       --> "(" expr ")" ;
	bin_op      --> "+" | "-" | "*" | "/" | "%" ;

Whitespace is skipped around atoms and operators but is not allowed inside
an integer. The alternatives of "atom" are tried in order, so a "-" at atom
position is always a unary minus, never a subtraction.

The scanner turns an input line into a flat token sequence for "expr", with
nested sub-sequences for group and unary_minus atoms. The parser climbs that
sequence using a precedence table to build the unique tree that honors
operator precedence and associativity.
*/
package calc
