package generate

// ERFA-style source fixtures. The doc comments follow the library's
// layout contract: "**"-prefixed lines, section headers ending in a
// colon, a bare "**" line closing each section.

const seppSrc = `#include "erfa.h"
#include <math.h>

double eraSepp(double a[3], double b[3])
/*
**  - - - - - - - -
**   e r a S e p p
**  - - - - - - - -
**
**  Angular separation between two p-vectors.
**
**  Given:
**     a      double[3]    first p-vector (not necessarily unit length)
**     b      double[3]    second p-vector (not necessarily unit length)
**
**  Returned (function value):
**            double       angular separation (radians, always positive)
**
**  Copyright (C) 2013-2021, NumFOCUS Foundation.
*/
{
   double axb[3], ss, cs;

   eraPxp(a, b, axb);
   ss = eraPm(axb);
   cs = eraPdp(a, b);

   return ((ss != 0.0) || (cs != 0.0)) ? atan2(ss, cs) : 0.0;
}
`

const rzSrc = `#include "erfa.h"
#include <math.h>

void eraRz(double psi, double r[3][3])
/*
**  - - - - - -
**   e r a R z
**  - - - - - -
**
**  Rotate an r-matrix about the z-axis.
**
**  Given:
**     psi    double          angle (radians)
**
**  Given and returned:
**     r      double[3][3]    r-matrix, rotated
**
**  Notes:
**
**  1) Calling this function with positive psi incorporates in the
**     supplied r-matrix r an additional rotation, about the z-axis,
**     anticlockwise as seen looking towards the origin from positive z.
*/
{
   double s, c, a[3][3];

   s = sin(psi);
   c = cos(psi);

   eraCr(r, a);
   r[0][0] = c*a[0][0] + s*a[1][0];
}
`

const cal2jdSrc = `#include "erfa.h"

int eraCal2jd(int iy, int im, int id,
              double *djm0, double *djm)
/*
**  - - - - - - - - - -
**   e r a C a l 2 j d
**  - - - - - - - - - -
**
**  Gregorian Calendar to Julian Date.
**
**  Given:
**     iy,im,id  int     year, month, day in Gregorian calendar (Note 1)
**
**  Returned:
**     djm0      double  MJD zero-point: always 2400000.5
**     djm       double  Modified Julian Date for 0 hrs
**
**  Returned (function value):
**               int     status:
**                           0 = OK
**                          -1 = bad year   (Note 3: JD not computed)
**
*/
{
   int j, ly, my;

   j = 0;
   *djm0 = 2400000.5;
   *djm = 0.0;

   return j;
}
`

// combinedSrc holds several definitions in one buffer; eraSepp is
// called inside eraDemo before its own definition appears, so locating
// it needs the anchor line.
const combinedSrc = `#include "erfa.h"

double eraPdp(double a[3], double b[3])
/*
**  Given:
**     a      double[3]    first vector
**     b      double[3]    second vector
**
**  Returned (function value):
**            double       a . b
**
*/
{
   return a[0]*b[0] + a[1]*b[1] + a[2]*b[2];
}

void eraDemo(double a[3], double b[3], double s[2])
/*
**  Given:
**     a      double[3]    first vector
**     b      double[3]    second vector
**
**  Returned:
**     s      double[2]    separation and dot product
**
*/
{
   s[0] = eraSepp(a, b);
   s[1] = eraPdp(a, b);
}

double eraSepp(double a[3], double b[3])
/*
**  Given:
**     a      double[3]    first p-vector
**     b      double[3]    second p-vector
**
**  Returned (function value):
**            double       angular separation
**
*/
{
   return 0.0;
}
`

const headerSrc = `#ifndef ERFAHDEF
#define ERFAHDEF

/* Astronomy/Calendars */
int eraCal2jd(int iy, int im, int id, double *djm0, double *djm);
double eraEpb(double dj1, double dj2);

/* Astronomy/SpaceMotion */
int eraStarpv(double ra, double dec,
              double pmr, double pmd, double px, double rv,
              double pv[2][3]);

/* VectorMatrix/Initialization */
void eraZp(double p[3]);

#endif
`
